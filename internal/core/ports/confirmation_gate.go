package ports

/*
ConfirmationGate abstracts the "ask the operator yes/no" capability the
reconciliation engine consults before destructive or ambiguous mutations.
An always-yes implementation satisfies it trivially in automated mode, which
keeps the decision logic testable without simulating a terminal.
*/
type ConfirmationGate interface {
	// Confirm asks the operator the given question and returns their answer.
	// The interactive implementation blocks on stdin.
	Confirm(prompt string) (bool, error)

	// ReadName asks the operator for a replacement alias name during
	// interactive conflict resolution. An empty string means "give up".
	ReadName(prompt string) (string, error)
}
