package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/agent-site/internal/contact"
)

func newContactCmd() *cobra.Command {
	var sub contact.Submission

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact form submission to a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := newAPIClient().SubmitContact(sub)
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), r)
			}
			return printReceipt(cmd.OutOrStdout(), r)
		},
	}

	cmd.Flags().StringVar(&sub.FirstName, "first", "", "first name (required)")
	cmd.Flags().StringVar(&sub.LastName, "last", "", "last name (required)")
	cmd.Flags().StringVar(&sub.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&sub.Interest, "interest", "", "buying, selling, both, renting or other (required)")
	cmd.Flags().StringVar(&sub.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&sub.Message, "message", "", "free-text message")
	cmd.Flags().StringVar(&sub.PreferredContact, "preferred", "", "preferred contact method (email, phone, text)")
	cmd.Flags().StringVar(&sub.Timeline, "timeline", "", "timeline, e.g. asap or 3-6months")

	return cmd
}
