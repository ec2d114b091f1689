package smtp

// Config holds the SMTP transport settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	// Secure selects implicit TLS on connect (e.g. port 465). When false
	// the client upgrades via STARTTLS where the server offers it.
	Secure bool
}
