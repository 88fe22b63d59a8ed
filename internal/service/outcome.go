package service

// Outcome classifies one submission attempt. Callers branch on the Outcome
// value; the message is display text only and carries no program meaning.
type Outcome int

const (
	OutcomeInvalidPayload Outcome = iota
	OutcomeAlreadyAnswered
	OutcomeInvalidTeam
	OutcomeIncorrect
	OutcomeSelected
	OutcomeSlotsFilled
)

func (o Outcome) Code() string {
	switch o {
	case OutcomeInvalidPayload:
		return "invalid_payload"
	case OutcomeAlreadyAnswered:
		return "already_answered"
	case OutcomeInvalidTeam:
		return "invalid_team"
	case OutcomeIncorrect:
		return "incorrect_answer"
	case OutcomeSelected:
		return "selected"
	case OutcomeSlotsFilled:
		return "slots_filled"
	}
	return "unknown"
}

func (o Outcome) Message() string {
	switch o {
	case OutcomeInvalidPayload:
		return "Invalid payload"
	case OutcomeAlreadyAnswered:
		return "You have already answered correctly. Good luck in next rounds!"
	case OutcomeInvalidTeam:
		return "Invalid teamId"
	case OutcomeIncorrect:
		return "Incorrect answer, please try again."
	case OutcomeSelected:
		return "Congratulations! You have been selected for the next rounds."
	case OutcomeSlotsFilled:
		return "Good job! Your answer is correct but selection slots are filled."
	}
	return ""
}
