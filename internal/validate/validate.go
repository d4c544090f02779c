// Package validate runs client-side input checks so obviously bad requests
// never hit the network. The server validates again; these rules only
// mirror the parts a user can get fast feedback on.
package validate

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ChiobiJason/asa-policy-frontend/internal/api"
)

// EmailDomain is the only email domain suggestions and accounts accept.
const EmailDomain = "@ualberta.ca"

var dottedID = regexp.MustCompile(`^\d+(\.\d+)*$`)

// organizationEmail requires a well-formed address under EmailDomain.
var organizationEmail = []validation.Rule{
	validation.Required,
	is.EmailFormat,
	validation.By(func(value interface{}) error {
		email, _ := value.(string)
		if !strings.HasSuffix(strings.ToLower(email), EmailDomain) {
			return validation.NewError("validation_email_domain", "email must end with "+EmailDomain)
		}
		return nil
	}),
}

// Suggestion checks feedback before submission.
func Suggestion(in api.SubmitSuggestionInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, organizationEmail...),
		validation.Field(&in.Content, validation.Required, validation.Length(1, 10000)),
		validation.Field(&in.PolicyID, validation.Match(dottedID).Error("must be a dotted numeric identifier")),
	)
}

// PolicyCreate checks a new policy submission.
func PolicyCreate(in api.CreatePolicyInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.PolicyID,
			validation.Required,
			validation.Match(dottedID).Error("must be a dotted numeric identifier like 1.2.3"),
		),
		validation.Field(&in.PolicyName, validation.Required, validation.Length(1, 500)),
		validation.Field(&in.Section, validation.Required, validation.In("1", "2", "3")),
		validation.Field(&in.PolicyContent, validation.Required),
	)
}

// PolicyUpdate checks an edit. The identifier is immutable and absent here.
func PolicyUpdate(in api.UpdatePolicyInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.PolicyName, validation.Required, validation.Length(1, 500)),
		validation.Field(&in.Section, validation.Required, validation.In("1", "2", "3")),
		validation.Field(&in.PolicyContent, validation.Required),
	)
}

// BylawCreate checks a new bylaw submission.
func BylawCreate(in api.CreateBylawInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.BylawNumber, validation.Required, validation.Min(1)),
		validation.Field(&in.BylawTitle, validation.Required, validation.Length(1, 500)),
		validation.Field(&in.BylawContent, validation.Required),
	)
}

// BylawUpdate checks a bylaw edit.
func BylawUpdate(in api.UpdateBylawInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.BylawNumber, validation.Required, validation.Min(1)),
		validation.Field(&in.BylawTitle, validation.Required, validation.Length(1, 500)),
		validation.Field(&in.BylawContent, validation.Required),
	)
}

// Login checks credentials are present and plausibly shaped.
func Login(email, password string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.EmailFormat),
		"password": validation.Validate(password, validation.Required),
	}.Filter()
}

// Register checks a new account.
func Register(in api.RegisterInput) error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, organizationEmail...),
		validation.Field(&in.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Password, validation.Required, validation.Length(8, 200)),
	)
}

// Role checks a role assignment value.
func Role(role string) error {
	return validation.Validate(role,
		validation.Required,
		validation.In(api.RolePublic, api.RoleAdmin, api.RolePolicyWorkingGroup),
	)
}

// ReviewStatus checks a review stance value.
func ReviewStatus(status string) error {
	return validation.Validate(status,
		validation.Required,
		validation.In(api.ReviewConfirmed, api.ReviewNeedsWork),
	)
}
