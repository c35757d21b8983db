package policy

import (
	"time"

	"legalassist/models"
	"legalassist/utils"
)

type PolicyService interface {
	// Sections returns the documents that apply to audience. An empty
	// audience returns every section.
	Sections(audience string) ([]models.PolicySection, error)
}

type DefaultPolicyService struct{}

// effective is the publication date of the current policy set.
var effective = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func allSections() []models.PolicySection {
	return []models.PolicySection{
		{
			ID:       "tos",
			Title:    "Terms of Service",
			Summary:  "These terms govern your use of the LegalAssist platform.",
			Content:  termsOfService,
			Audience: models.AudienceAll,
		},
		{
			ID:       "ai-disclaimer",
			Title:    "AI Assistant Disclaimer",
			Summary:  "The assistant gives general legal information, not legal advice.",
			Content:  aiDisclaimer,
			Audience: models.AudienceAll,
		},
		{
			ID:       "privacy",
			Title:    "Privacy Policy",
			Summary:  "How LegalAssist stores your documents, messages and conversations.",
			Content:  privacyPolicy,
			Audience: models.AudienceAll,
		},
		{
			ID:       "payments",
			Title:    "Consultation Payment Policy",
			Summary:  "How consultation fees are calculated and charged.",
			Content:  paymentPolicy,
			Audience: models.AudienceClient,
		},
		{
			ID:       "lawyer-conduct",
			Title:    "Lawyer Listing Standards",
			Summary:  "Requirements for lawyers who list a profile in the directory.",
			Content:  lawyerConduct,
			Audience: models.AudienceLawyer,
		},
	}
}

func (s *DefaultPolicyService) Sections(audience string) ([]models.PolicySection, error) {
	switch audience {
	case "", models.AudienceAll, models.AudienceClient, models.AudienceLawyer:
	default:
		return nil, utils.ValidationError("audience must be client or lawyer")
	}

	out := make([]models.PolicySection, 0)
	for _, section := range allSections() {
		if audience == "" || audience == models.AudienceAll ||
			section.Audience == models.AudienceAll || section.Audience == audience {
			section.Version = "v1.0"
			section.Updated = effective
			out = append(out, section)
		}
	}
	return out, nil
}

const termsOfService = `By accessing or using LegalAssist you agree to these Terms of Service.

1. Eligibility: You must be 18 or older to create an account.
2. Platform Use: LegalAssist connects clients with independent licensed attorneys.
3. Independence: Lawyers listed in the directory are not employees or agents of LegalAssist.
4. Accounts: You are responsible for activity under your credentials.
5. Termination: Accounts that breach these terms may be suspended.`

const aiDisclaimer = `The LegalAssist assistant provides general legal information only.

- It does not provide legal advice.
- Using it does not create an attorney-client relationship.
- Answers may be incomplete or out of date for your jurisdiction.
- For complex or time-sensitive matters, consult a licensed attorney.`

const privacyPolicy = `LegalAssist collects only the data needed to run the service.

1. Data We Collect: Name, email, profile details, uploaded documents and messages.
2. Conversations: Assistant conversations of signed-in users are stored with your account. Anonymous conversations expire.
3. Documents: Uploaded files are visible only to you and the users you share them with.
4. Third Parties: Stripe (payments), Cloudinary (file storage), Google (assistant replies).
5. Rights: You can request deletion of your data at any time.`

const paymentPolicy = `1. Consultation fees are the lawyer's hourly rate multiplied by the booked hours.
2. Fees are charged in USD and processed securely by Stripe.
3. A single consultation cannot exceed 24 hours.
4. Refund requests are reviewed case by case.`

const lawyerConduct = `Lawyers listing a profile agree to:

- Hold a valid license in the jurisdictions they list.
- Keep their specialization, location and hourly rate accurate.
- Respond to client messages professionally and promptly.
- Keep client documents confidential.

Ratings are earned from client reviews and cannot be set by the lawyer.`
