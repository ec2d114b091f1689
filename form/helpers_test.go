package form_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zabka-mb/backend/form"
	"github.com/zabka-mb/backend/mailer"
)

const (
	testSenderAddress = "noreply@zabkambsolutions.in"
	testStaffAddress  = "staff@zabkambsolutions.in"
)

// fakeSender records every send and can be switched to fail all of them.
type fakeSender struct {
	mu   sync.Mutex
	sent []mailer.Email
	fail bool
}

func (f *fakeSender) Send(ctx context.Context, email *mailer.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return mailer.ErrSendFailed
	}
	f.sent = append(f.sent, *email)
	return nil
}

func (f *fakeSender) sentEmails() []mailer.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]mailer.Email, len(f.sent))
	copy(out, f.sent)
	return out
}

// failingRepo errors on every operation, simulating a lost store.
type failingRepo struct{}

func (failingRepo) FindByAny(ctx context.Context, keys []form.UniqueKey) (*form.Submission, error) {
	return nil, errors.New("store unreachable")
}

func (failingRepo) Insert(ctx context.Context, subm form.Submission) error {
	return errors.New("store unreachable")
}

type testEnv struct {
	srvc   *form.FormSrvc
	repos  map[form.FormType]*form.InMemRepo
	sender *fakeSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repos := map[form.FormType]*form.InMemRepo{
		form.FormTypeContact: form.NewInMemRepo(),
		form.FormTypeCareer:  form.NewInMemRepo(),
		form.FormTypePartner: form.NewInMemRepo(),
	}
	sender := &fakeSender{}

	srvcRepos := make(map[form.FormType]form.SubmissionRepo, len(repos))
	for formType, repo := range repos {
		srvcRepos[formType] = repo
	}

	return &testEnv{
		srvc: form.NewFormSrvc(form.SrvcParams{
			Repos:         srvcRepos,
			Sender:        sender,
			SenderAddress: testSenderAddress,
			StaffAddress:  testStaffAddress,
		}),
		repos:  repos,
		sender: sender,
	}
}

func validContactFields() form.Fields {
	return form.Fields{
		"name":    "Asha",
		"email":   "asha@x.com",
		"number":  "9876543210",
		"message": "Hello",
	}
}

func validCareerFields() form.Fields {
	return form.Fields{
		"fullName":    "Ravi Kumar",
		"email":       "ravi@x.com",
		"phone":       "9876501234",
		"position":    "Field Executive",
		"experience":  "3 years",
		"location":    "Delhi",
		"skills":      "Sales, CRM",
		"coverLetter": "I would like to apply.",
	}
}

func validPartnerFields() form.Fields {
	return form.Fields{
		"name":      "Priya",
		"email":     "priya@x.com",
		"phone":     "9876500000",
		"interests": []any{"NCMC Card", "FASTag"},
	}
}

func submitOk(t *testing.T, env *testEnv, formType form.FormType, fields form.Fields) *form.Submission {
	t.Helper()
	subm, err := env.srvc.Submit(context.Background(), form.SubmitParams{
		FormType: formType,
		Fields:   fields,
	})
	require.NoError(t, err)
	require.NotNil(t, subm)
	return subm
}
