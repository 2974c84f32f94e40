package mail

type LeadNotificationData struct {
	Name    string
	Email   string
	Phone   string
	Message string
	FBC     string
	FBP     string
	GCLID   string
}

// HasAttribution reports whether any ad-platform identifier came with the
// submission; the template only renders the attribution block when true.
func (d LeadNotificationData) HasAttribution() bool {
	return d.FBC != "" || d.FBP != "" || d.GCLID != ""
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}
