package regform

// Outcome is the result of a submit attempt.
type Outcome int

const (
	// OutcomeConsentMissing: terms not accepted; the consent notice was sent.
	OutcomeConsentMissing Outcome = iota + 1
	// OutcomeInvalid: at least one field failed; no notice was sent.
	OutcomeInvalid
	// OutcomeSubmitted: every field passed; the success notice was sent.
	OutcomeSubmitted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConsentMissing:
		return "consent_missing"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}
