package usecase_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
	"github.com/m-mizutani/caskbump/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestCommitEmail(t *testing.T) {
	tests := []struct {
		name    string
		account model.Account
		want    string
	}{
		{
			name: "public email is used as is",
			account: model.Account{
				ID:        1,
				Login:     "octocat",
				Email:     "octocat@example.com",
				CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			want: "octocat@example.com",
		},
		{
			name: "created before cutoff",
			account: model.Account{
				ID:        583231,
				Login:     "octocat",
				CreatedAt: time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC),
			},
			want: "octocat@users.noreply.github.com",
		},
		{
			name: "created on cutoff date",
			account: model.Account{
				ID:        42,
				Login:     "edge",
				CreatedAt: time.Date(2017, 7, 18, 23, 59, 59, 0, time.UTC),
			},
			want: "edge@users.noreply.github.com",
		},
		{
			name: "created the day after cutoff",
			account: model.Account{
				ID:        43,
				Login:     "newbie",
				CreatedAt: time.Date(2017, 7, 19, 0, 0, 1, 0, time.UTC),
			},
			want: "43+newbie@users.noreply.github.com",
		},
		{
			name: "created long after cutoff",
			account: model.Account{
				ID:        98765432,
				Login:     "recent",
				CreatedAt: time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			want: "98765432+recent@users.noreply.github.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Value(t, usecase.CommitEmail(&tt.account)).Equal(tt.want)
		})
	}
}

func TestResolveIdentity(t *testing.T) {
	account := testAccount()
	identity := usecase.ResolveIdentity(account)
	gt.Value(t, identity.Name).Equal("octocat")
	gt.Value(t, identity.Email).Equal("12345+octocat@users.noreply.github.com")

	account.Name = "The Octocat"
	gt.Value(t, usecase.ResolveIdentity(account).Name).Equal("The Octocat")
}

func TestComposeMessage(t *testing.T) {
	gt.Value(t, usecase.ComposeMessage("")).Equal(usecase.AttributionFooter)
	gt.Value(t, usecase.ComposeMessage("  \n")).Equal(usecase.AttributionFooter)
	gt.Value(t, usecase.ComposeMessage("Bump app")).Equal("Bump app\n\n" + usecase.AttributionFooter)
}
