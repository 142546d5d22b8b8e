package domain

// GuidanceRequest is the input for the AI travel-guidance collaborator.
// Unlike QuoteRequest it carries a free-form destination country, matching
// the older revision of the travel feature it serves.
type GuidanceRequest struct {
	// Destination is the destination country as entered by the owner.
	Destination string

	Species Species

	// AnimalAge is the pet's age in whole years.
	AnimalAge int

	// HealthConditions is the owner's free-form description of known
	// conditions. "Ninguna" when none.
	HealthConditions string
}
