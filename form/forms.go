package form

// AckCopy is the per-form wording of the applicant acknowledgment email.
type AckCopy struct {
	Heading        string
	Intro          string // rendered after "Dear {name}, "
	Body           string
	NextStepsTitle string
	NextStepsIntro string
	NextSteps      []string // optional bullet list
	Outro          string
}

// FormDef is the full per-form-type configuration of the submission
// pipeline: schema, uniqueness keys, wording and templates. The three
// definitions below are the only instances; the pipeline itself is generic.
type FormDef struct {
	Type   FormType
	Schema Schema

	// UniqueKeys lists the fields whose values identify a duplicate
	// submission (a record matching ANY one of them blocks the insert).
	// Empty means repeat submissions are allowed.
	UniqueKeys []string

	// NameField names the field used in greetings and staff subjects.
	NameField string

	SuccessMessage  string
	AckSubject      string
	StaffSubjectFmt string // fmt verb receives the submitter name

	StaffHeading string
	StaffIntro   string
	Ack          AckCopy
}

var definitions = map[FormType]FormDef{
	FormTypeContact: contactForm(),
	FormTypeCareer:  careerForm(),
	FormTypePartner: partnerForm(),
}

// Definition returns the configuration for a form type.
func Definition(formType FormType) (FormDef, bool) {
	def, ok := definitions[formType]
	return def, ok
}

func contactForm() FormDef {
	return FormDef{
		Type: FormTypeContact,
		Schema: Schema{Rules: []FieldRule{
			{Name: "name", Label: "Name", Kind: KindString, Required: true,
				RequiredMsg: "* Name Is Required"},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true,
				RequiredMsg: "* Email Is Required", Link: LinkMailto},
			{Name: "number", Label: "Contact Number", Kind: KindString, Required: true,
				RequiredMsg: "* Number Is Required", Link: LinkTel},
			{Name: "message", Label: "Message", Kind: KindString, Required: true,
				RequiredMsg: "* Message Is Required"},
		}},
		UniqueKeys:      []string{"email", "number"},
		NameField:       "name",
		SuccessMessage:  "New Contact Details Added Successfully",
		AckSubject:      "Thanks for Contacting Zabka MB Solutions",
		StaffSubjectFmt: "New Contact Request from %s",
		StaffHeading:    "New Contact Form Submission",
		StaffIntro:      "You have received a new contact form submission with the following details:",
		Ack: AckCopy{
			Heading:        "Thank You for Your Submission",
			Intro:          "thank you for contacting Zabka MB Solutions! We've received your message and appreciate your interest in our services.",
			Body:           "We wanted to let you know that your form submission has been successfully received. Our team will review your message and get back to you as soon as possible.",
			NextStepsTitle: "What happens next?",
			NextStepsIntro: "One of our team members will contact you within 24-48 business hours to address your inquiry.",
			Outro:          "In the meantime, feel free to explore our website for more information about our services and offerings.",
		},
	}
}

func careerForm() FormDef {
	return FormDef{
		Type: FormTypeCareer,
		Schema: Schema{Rules: []FieldRule{
			{Name: "fullName", Label: "Full Name", Kind: KindString, Required: true,
				RequiredMsg: "* Full Name Is Required"},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true,
				RequiredMsg: "* Email Is Required", Link: LinkMailto},
			{Name: "phone", Label: "Phone Number", Kind: KindString, Required: true,
				RequiredMsg: "* Phone Is Required", Link: LinkTel},
			{Name: "position", Label: "Position Applied", Kind: KindString, Required: true,
				RequiredMsg: "* Position Is Required"},
			{Name: "experience", Label: "Experience", Kind: KindString, Required: true,
				RequiredMsg: "* Experience Is Required"},
			{Name: "location", Label: "Location", Kind: KindString, Required: true,
				RequiredMsg: "* Location Is Required"},
			{Name: "skills", Label: "Skills", Kind: KindString, Required: true,
				RequiredMsg: "* Skills Are Required"},
			{Name: "coverLetter", Label: "Cover Letter", Kind: KindString, Required: true,
				RequiredMsg: "* Cover Letter Is Required"},
			{Name: "resume", Label: "Resume", Kind: KindString,
				Fallback: "No resume link provided", Link: LinkURL, LinkText: "View Resume"},
		}},
		// Repeat applications are allowed: no uniqueness keys.
		NameField:       "fullName",
		SuccessMessage:  "Career Application Submitted Successfully",
		AckSubject:      "Thank You for Your Application - Zabka MB Solutions",
		StaffSubjectFmt: "New Career Application from %s",
		StaffHeading:    "New Career Application",
		StaffIntro:      "You have received a new career application with the following details:",
		Ack: AckCopy{
			Heading:        "Thank You for Your Application",
			Intro:          "thank you for applying to Zabka MB Solutions! We've received your application and appreciate your interest in joining our team.",
			Body:           "We wanted to let you know that your application has been successfully received. Our hiring team will review it carefully.",
			NextStepsTitle: "What happens next?",
			NextStepsIntro: "If your profile matches our requirements, our team will reach out to schedule the next steps. This may include:",
			NextSteps: []string{
				"An introductory call with our team",
				"A discussion about the role and your experience",
				"Final interview and offer",
			},
			Outro: "We appreciate the time you took to apply and wish you the best of luck.",
		},
	}
}

func partnerForm() FormDef {
	return FormDef{
		Type: FormTypePartner,
		Schema: Schema{Rules: []FieldRule{
			{Name: "name", Label: "Name", Kind: KindString, Required: true,
				RequiredMsg: "* Name Is Required"},
			{Name: "email", Label: "Email", Kind: KindEmail, Required: true,
				RequiredMsg: "* Email Is Required", Link: LinkMailto},
			{Name: "phone", Label: "Phone Number", Kind: KindString, Required: true,
				RequiredMsg: "* Phone Is Required", Link: LinkTel},
			{Name: "interests", Label: "Areas of Interest", Kind: KindStringList, Required: true,
				RequiredMsg: "* At least one interest is required"},
			{Name: "notes", Label: "Notes / Area Details", Kind: KindString,
				Fallback: "No additional notes provided"},
		}},
		UniqueKeys:      []string{"email", "phone"},
		NameField:       "name",
		SuccessMessage:  "Partner Registration Submitted Successfully",
		AckSubject:      "Thank You for Your Partner Registration - Zabka MB Solutions",
		StaffSubjectFmt: "New Partner Registration from %s",
		StaffHeading:    "New Partner Registration",
		StaffIntro:      "You have received a new partner registration with the following details:",
		Ack: AckCopy{
			Heading:        "Thank You for Your Partner Registration",
			Intro:          "thank you for your interest in becoming a partner with Zabka MB Solutions! We've received your registration and are excited about the potential collaboration.",
			Body:           "We wanted to let you know that your partner registration has been successfully received. Our partnership team will review your application and get back to you within 2-3 business days.",
			NextStepsTitle: "What happens next?",
			NextStepsIntro: "Our partnership team will review your application and contact you to discuss the next steps. This may include:",
			NextSteps: []string{
				"Initial discussion about partnership opportunities",
				"Documentation and verification process",
				"Training and onboarding sessions",
				"Agreement finalization",
			},
			Outro: "We're committed to building strong partnerships and look forward to working with you to provide excellent services to our customers.",
		},
	}
}
