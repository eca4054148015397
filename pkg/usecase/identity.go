package usecase

import (
	"time"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
)

// NoreplyDomain is the host part of GitHub no-reply commit addresses
const NoreplyDomain = "users.noreply.github.com"

// Accounts created after this date get "id+login" no-reply addresses.
// https://docs.github.com/en/account-and-profile/setting-up-and-managing-your-personal-account-on-github/managing-email-preferences/setting-your-commit-email-address
var plusAddressCutoff = time.Date(2017, time.July, 18, 0, 0, 0, 0, time.UTC)

// CommitEmail returns the public email of the account, or its no-reply address
func CommitEmail(account *model.Account) string {
	if account.Email != "" {
		return account.Email
	}

	email := account.Login + "@" + NoreplyDomain
	y, m, d := account.CreatedAt.UTC().Date()
	if time.Date(y, m, d, 0, 0, 0, 0, time.UTC).After(plusAddressCutoff) {
		email = formatID(account.ID) + "+" + email
	}
	return email
}

// ResolveIdentity returns the commit identity of the account
func ResolveIdentity(account *model.Account) model.Identity {
	return model.Identity{
		Name:  account.DisplayName(),
		Email: CommitEmail(account),
	}
}
