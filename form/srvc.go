package form

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zabka-mb/backend/logger"
	"github.com/zabka-mb/backend/mailer"
)

// FormSrvc runs the submission pipeline: validate, check for duplicates,
// persist, notify. One service instance handles all form types; the
// per-type behavior comes entirely from the form definitions.
type FormSrvc struct {
	repos  map[FormType]SubmissionRepo
	sender mailer.Sender

	senderAddress string // From address of all mail, also used in errors
	staffAddress  string // recipient of staff notices
}

type SrvcParams struct {
	Repos         map[FormType]SubmissionRepo
	Sender        mailer.Sender
	SenderAddress string
	StaffAddress  string
}

func NewFormSrvc(p SrvcParams) *FormSrvc {
	return &FormSrvc{
		repos:         p.Repos,
		sender:        p.Sender,
		senderAddress: p.SenderAddress,
		staffAddress:  p.StaffAddress,
	}
}

type SubmitParams struct {
	FormType FormType
	Fields   Fields
}

// Submit runs one pipeline invocation. The order is fixed: validation
// strictly precedes the duplicate check, which strictly precedes the
// insert. Success is determined by persistence alone; the two notification
// emails are best effort (see notify).
func (s *FormSrvc) Submit(ctx context.Context, p SubmitParams) (*Submission, error) {
	def, ok := Definition(p.FormType)
	if !ok {
		return nil, newErrInternalSE().
			SetDebug(fmt.Errorf("unknown form type %q", p.FormType))
	}

	repo, ok := s.repos[p.FormType]
	if !ok {
		return nil, newErrInternalSE().
			SetDebug(fmt.Errorf("no repository configured for form type %q", p.FormType))
	}

	fields, violations := def.Schema.Validate(p.Fields)
	if len(violations) > 0 {
		return nil, newErrValidation(violations)
	}

	if len(def.UniqueKeys) > 0 {
		// Read-then-write duplicate detection. Two concurrent identical
		// submissions can both pass this check; accepted for the traffic
		// profile of a marketing site.
		keys := make([]UniqueKey, 0, len(def.UniqueKeys))
		for _, field := range def.UniqueKeys {
			keys = append(keys, UniqueKey{Field: field, Value: fields.Str(field)})
		}
		existing, err := repo.FindByAny(ctx, keys)
		if err != nil {
			return nil, newErrInternalSE().
				SetDebug(fmt.Errorf("duplicate check for %s: %w", def.Type, err))
		}
		if existing != nil {
			return nil, newErrDuplicateSubmission()
		}
	}

	subm := Submission{
		Uuid:      uuid.New(),
		FormType:  def.Type,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Insert(ctx, subm); err != nil {
		return nil, newErrInternalSE().
			SetDebug(fmt.Errorf("insert %s submission: %w", def.Type, err))
	}

	s.notify(ctx, def, subm)

	return &subm, nil
}

// notify renders and dispatches the acknowledgment and the staff notice
// concurrently, waits for both to settle, and discards individual failures
// into the log. The submission already succeeded at this point.
func (s *FormSrvc) notify(ctx context.Context, def FormDef, subm Submission) {
	log := logger.FromContext(ctx).With(
		"form", string(def.Type),
		"submission", subm.Uuid.String())

	name := subm.Fields.Str(def.NameField)

	var g errgroup.Group

	g.Go(func() error {
		html, err := RenderApplicantAck(def, subm.Fields)
		if err != nil {
			log.Error("failed to render applicant acknowledgment", "error", err)
			return nil
		}
		err = s.sender.Send(ctx, &mailer.Email{
			From:    s.senderAddress,
			To:      subm.Fields.Str("email"),
			Subject: def.AckSubject,
			HTML:    html,
		})
		if err != nil {
			log.Error("failed to send applicant acknowledgment", "error", err)
		}
		return nil
	})

	g.Go(func() error {
		html, err := RenderStaffNotice(def, subm.Fields)
		if err != nil {
			log.Error("failed to render staff notice", "error", err)
			return nil
		}
		err = s.sender.Send(ctx, &mailer.Email{
			From:    s.senderAddress,
			To:      s.staffAddress,
			Subject: fmt.Sprintf(def.StaffSubjectFmt, name),
			HTML:    html,
		})
		if err != nil {
			log.Error("failed to send staff notice", "error", err)
		}
		return nil
	})

	_ = g.Wait() // the goroutines above never return errors
}
