package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/caskbump/pkg/domain/model"
)

// mockBrew implements ManifestLoader, ScanQuery and Bumper
type mockBrew struct {
	manifests map[string]*model.DownloadDescriptor
	records   []*model.LivecheckRecord
	scanErr   error
	bumpFunc  func(req *model.BumpRequest) error

	loadCalls      []string
	livecheckCalls []livecheckCall
	bumpCalls      []*model.BumpRequest
	tapCalls       []string
	installCalls   []string
}

type livecheckCall struct {
	Tap   string
	Names []string
}

func (m *mockBrew) LoadManifest(ctx context.Context, fullName string) (*model.DownloadDescriptor, error) {
	m.loadCalls = append(m.loadCalls, fullName)
	d, ok := m.manifests[fullName]
	if !ok {
		return nil, model.ErrManifestNotFound
	}
	return d, nil
}

func (m *mockBrew) Livecheck(ctx context.Context, tap string, names []string) ([]*model.LivecheckRecord, error) {
	m.livecheckCalls = append(m.livecheckCalls, livecheckCall{Tap: tap, Names: names})
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	return m.records, nil
}

func (m *mockBrew) BumpCaskPR(ctx context.Context, req *model.BumpRequest) error {
	m.bumpCalls = append(m.bumpCalls, req)
	if m.bumpFunc != nil {
		return m.bumpFunc(req)
	}
	return nil
}

func (m *mockBrew) Tap(ctx context.Context, tap string) error {
	m.tapCalls = append(m.tapCalls, tap)
	return nil
}

func (m *mockBrew) Install(ctx context.Context, formula string) error {
	m.installCalls = append(m.installCalls, formula)
	return nil
}

type mockUpstream struct {
	urls  map[string]string
	calls int
}

func (m *mockUpstream) UpdateURL(ctx context.Context, oldURL, version string) (string, bool, error) {
	m.calls++
	u, ok := m.urls[oldURL]
	return u, ok, nil
}

type mockAccounts struct {
	account *model.Account
	calls   int
}

func (m *mockAccounts) GetAccount(ctx context.Context) (*model.Account, error) {
	m.calls++
	if m.account == nil {
		return nil, errors.New("no account")
	}
	return m.account, nil
}

type mockIdentity struct {
	identities []model.Identity
}

func (m *mockIdentity) SetIdentity(ctx context.Context, identity model.Identity) error {
	m.identities = append(m.identities, identity)
	return nil
}

type mockNotifier struct {
	results []*model.RunResult
}

func (m *mockNotifier) NotifyRun(ctx context.Context, cfg model.BumpConfig, result *model.RunResult) error {
	m.results = append(m.results, result)
	return nil
}

func testAccount() *model.Account {
	return &model.Account{
		ID:        12345,
		Login:     "octocat",
		CreatedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func commandError(name string) error {
	return &model.CommandError{
		Args:     []string{"brew", "bump-cask-pr", name},
		ExitCode: 1,
		Output:   "Error: " + name + " failed",
	}
}
