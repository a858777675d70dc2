// Package presenter holds the display-side collaborators of the form.
//
// Board is an engine.Reporter that remembers, per field, whether it is shown
// as valid or invalid and which message sits under it. Valid fields show
// ValidMessage; invalid ones show their rule's message.
//
// PasswordToggle tracks whether the password input is masked and which of
// its two mutually exclusive controls is on screen.
package presenter
