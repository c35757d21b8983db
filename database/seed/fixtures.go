package seed

import "legalassist/models"

// DefaultPassword is assigned to every seeded account.
const DefaultPassword = "Password123!"

func sampleClients() []models.User {
	return []models.User{
		{
			Email:     "client1@example.com",
			FirstName: "John",
			LastName:  "Doe",
			Username:  "johndoe",
			UserType:  models.UserTypeClient,
			Phone:     "555-123-4567",
			Address:   "123 Main St",
			Timezone:  "America/New_York",
		},
		{
			Email:     "client2@example.com",
			FirstName: "Sarah",
			LastName:  "Johnson",
			Username:  "sarahj",
			UserType:  models.UserTypeClient,
			Phone:     "555-987-6543",
			Address:   "456 Oak Ave",
			Timezone:  "America/Los_Angeles",
		},
	}
}

func legalResources() []models.LegalResource {
	return []models.LegalResource{
		{
			Title:    "Understanding Contract Law Basics",
			Content:  "This guide covers the fundamental principles of contract law, including formation, consideration, and breach of contract. Ideal for small business owners and individuals.",
			Category: "Contract Law",
			Tags:     []string{"contracts", "business law", "legal agreements"},
		},
		{
			Title:    "Family Law: Divorce Proceedings",
			Content:  "A comprehensive overview of divorce proceedings, covering asset division, child custody, and alimony considerations.",
			Category: "Family Law",
			Tags:     []string{"divorce", "family law", "custody"},
		},
		{
			Title:    "Intellectual Property Rights for Creators",
			Content:  "Learn about copyright, trademark, and patent protections for creative works, inventions, and brand identities.",
			Category: "Intellectual Property",
			Tags:     []string{"copyright", "trademark", "patents", "IP law"},
		},
		{
			Title:    "Employment Law: Workers' Rights",
			Content:  "An essential guide to employment rights, workplace discrimination, and wrongful termination cases.",
			Category: "Employment Law",
			Tags:     []string{"workplace", "discrimination", "workers rights"},
		},
		{
			Title:    "Personal Injury Claims Process",
			Content:  "Step-by-step guidance through the personal injury claims process, from documentation to settlement negotiation.",
			Category: "Personal Injury",
			Tags:     []string{"injury claims", "damages", "settlements"},
		},
	}
}

func legalNews() []models.LegalNews {
	return []models.LegalNews{
		{
			Title:    "Supreme Court Issues Landmark Privacy Ruling",
			Content:  "In a 7-2 decision, the Supreme Court has ruled that law enforcement agencies must obtain a warrant before accessing cellular location data, marking a significant advancement in digital privacy protections.",
			Category: "Constitutional Law",
			ImageURL: "https://images.unsplash.com/photo-1589829545856-d10d557cf95f?auto=format&fit=crop&w=3270&q=80",
			Source:   "Legal Times",
		},
		{
			Title:    "New Legislation Enhances Environmental Protections",
			Content:  "Congress has passed a comprehensive environmental bill that strengthens regulations on industrial emissions and provides funding for renewable energy initiatives.",
			Category: "Environmental Law",
			ImageURL: "https://images.unsplash.com/photo-1497435334941-8c899ee9e8e9?auto=format&fit=crop&w=2874&q=80",
			Source:   "Environmental Law Journal",
		},
		{
			Title:    "Major Class Action Settlement in Pharmaceutical Case",
			Content:  "A pharmaceutical company has agreed to a $2.1 billion settlement in a class action lawsuit regarding undisclosed side effects of its popular arthritis medication.",
			Category: "Healthcare Law",
			ImageURL: "https://images.unsplash.com/photo-1554734867-bf3c00a49371?auto=format&fit=crop&w=3270&q=80",
			Source:   "Health Law Review",
		},
		{
			Title:    "International Treaty on Digital Trade Enters Force",
			Content:  "After ratification by 24 countries, the International Digital Trade Agreement has officially taken effect, establishing global standards for e-commerce and cross-border data flows.",
			Category: "International Law",
			ImageURL: "https://images.unsplash.com/photo-1607703703520-bb638e84caf2?auto=format&fit=crop&w=2940&q=80",
			Source:   "Global Legal Monitor",
		},
		{
			Title:    "State Bar Association Announces Ethics Reforms",
			Content:  "The State Bar Association has approved comprehensive ethics reforms, including enhanced oversight of attorney advertising and stricter conflict of interest disclosures.",
			Category: "Legal Ethics",
			ImageURL: "https://images.unsplash.com/photo-1521791055366-0d553872125f?auto=format&fit=crop&w=2669&q=80",
			Source:   "Bar Journal",
		},
	}
}
