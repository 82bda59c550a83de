package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ictam/agmsite/internal/core/domain"
)

var contactForm domain.ContactSubmission

var registration struct {
	domain.Registration
	passType string
}

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Example: `  agmsite contact --name "Ama Mensah" --email ama@example.com \
    --subject "Visa letter" --message "Could you send an invitation letter?"`,
	Args: cobra.NoArgs,
	RunE: runContact,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register for the event",
	Long: `Submits the registration form. Pass types are:
  "Early Bird (In-person)" (default), "Standard (In-person)", "Virtual Pass".`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	f := contactCmd.Flags()
	f.StringVar(&contactForm.Name, "name", "", "your name")
	f.StringVar(&contactForm.Email, "email", "", "your email address")
	f.StringVar(&contactForm.Subject, "subject", "", "message subject")
	f.StringVarP(&contactForm.Message, "message", "m", "", "message body")
	rootCmd.AddCommand(contactCmd)

	r := registerCmd.Flags()
	r.StringVar(&registration.FullName, "name", "", "full name")
	r.StringVar(&registration.Email, "email", "", "email address")
	r.StringVar(&registration.Organisation, "organisation", "", "organisation")
	r.StringVar(&registration.passType, "pass", string(domain.PassEarlyBird), "pass type")
	r.StringVar(&registration.Country, "country", "", "country")
	r.StringVar(&registration.FocusAreas, "focus", "", "areas of interest")
	r.BoolVar(&registration.Newsletter, "newsletter", false, "subscribe to the newsletter")
	rootCmd.AddCommand(registerCmd)
}

func runContact(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errNotConfigured("contact")
	}

	accepted, err := contactService.SubmitContact(cmd.Context(), contactForm)
	if err != nil {
		return formError(cmd.ErrOrStderr(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Message sent. Reference: %s\n", accepted.ID)
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if contactService == nil {
		return errNotConfigured("contact")
	}

	reg := registration.Registration
	reg.PassType = domain.PassType(registration.passType)
	accepted, err := contactService.SubmitRegistration(cmd.Context(), reg)
	if err != nil {
		return formError(cmd.ErrOrStderr(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registration received for %s (%s). Reference: %s\n",
		accepted.FullName, accepted.PassType, accepted.ID)
	return nil
}

// formError lists field errors before returning err.
func formError(w io.Writer, err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("submission failed: %w", err)
	}
	fields := make([]string, 0, len(verr.Fields))
	for f := range verr.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "  --%s: %s\n", flagFor(f), verr.Fields[f])
	}
	return err
}

// flagFor maps a form field to the flag that sets it.
func flagFor(field string) string {
	switch field {
	case "fullName":
		return "name"
	case "passType":
		return "pass"
	default:
		return field
	}
}
