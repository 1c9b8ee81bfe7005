package email

// SetTestURL overrides the Resend API base URL on a client for testing.
// This should only be used in tests.
func SetTestURL(c *ResendClient, baseURL string) {
	if baseURL != "" {
		c.baseURL = baseURL
	}
}
