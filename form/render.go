package form

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

	// strictPolicy strips every HTML element from user-provided values
	// before they are interpolated into the documents.
	strictPolicy = bluemonday.StrictPolicy()
)

const (
	companyName  = "Zabka MB Solutions"
	websiteURL   = "http://zabkambsolutions.in/"
	contactEmail = "info@zabkambsolutions.in"
	contactPhone = "+911171218473"
)

type noticeRow struct {
	Label    string
	Value    template.HTML
	List     []template.HTML
	Href     string
	LinkText string
}

type staffNoticeView struct {
	Company string
	Heading string
	Intro   string
	Rows    []noticeRow
}

type applicantAckView struct {
	Company        string
	Heading        string
	Name           template.HTML
	Intro          string
	Body           string
	Interests      []template.HTML
	NextStepsTitle string
	NextStepsIntro string
	NextSteps      []string
	Outro          string
	WebsiteURL     string
	ContactEmail   string
	ContactPhone   string
}

func sanitized(s string) template.HTML {
	return template.HTML(strictPolicy.Sanitize(s))
}

// RenderStaffNotice produces the internal notification document: a table
// of every schema field in declaration order. List values become discrete
// tags, absent optional values render their fallback placeholder.
func RenderStaffNotice(def FormDef, fields Fields) (string, error) {
	view := staffNoticeView{
		Company: companyName,
		Heading: def.StaffHeading,
		Intro:   def.StaffIntro,
	}

	for _, rule := range def.Schema.Rules {
		row := noticeRow{Label: rule.Label}

		if rule.Kind == KindStringList {
			for _, item := range fields.List(rule.Name) {
				row.List = append(row.List, sanitized(item))
			}
			if len(row.List) == 0 {
				row.Value = sanitized(rule.Fallback)
			}
			view.Rows = append(view.Rows, row)
			continue
		}

		value := fields.Str(rule.Name)
		if value == "" {
			row.Value = sanitized(rule.Fallback)
			view.Rows = append(view.Rows, row)
			continue
		}

		switch rule.Link {
		case LinkMailto:
			row.Href, row.LinkText = "mailto:"+value, value
		case LinkTel:
			row.Href, row.LinkText = "tel:+91"+value, value
		case LinkURL:
			row.Href, row.LinkText = value, rule.LinkText
			if row.LinkText == "" {
				row.LinkText = value
			}
		default:
			row.Value = sanitized(value)
		}
		view.Rows = append(view.Rows, row)
	}

	return execute("staff-notice.html", view)
}

// RenderApplicantAck produces the acknowledgment document sent back to
// the submitter.
func RenderApplicantAck(def FormDef, fields Fields) (string, error) {
	view := applicantAckView{
		Company:        companyName,
		Heading:        def.Ack.Heading,
		Name:           sanitized(fields.Str(def.NameField)),
		Intro:          def.Ack.Intro,
		Body:           def.Ack.Body,
		NextStepsTitle: def.Ack.NextStepsTitle,
		NextStepsIntro: def.Ack.NextStepsIntro,
		NextSteps:      def.Ack.NextSteps,
		Outro:          def.Ack.Outro,
		WebsiteURL:     websiteURL,
		ContactEmail:   contactEmail,
		ContactPhone:   contactPhone,
	}

	for _, rule := range def.Schema.Rules {
		if rule.Kind != KindStringList {
			continue
		}
		for _, item := range fields.List(rule.Name) {
			view.Interests = append(view.Interests, sanitized(item))
		}
	}

	return execute("applicant-ack.html", view)
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
