// internal/domain/homework/status.go
package homework

import "fmt"

// Status is the review state reported for a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known status to the text shown in the chat.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

var ErrRecordNotObject = fmt.Errorf("homework record is not a JSON object")
var ErrMissingHomeworkName = fmt.Errorf("homework record has no homework_name")
var ErrUnknownStatus = fmt.Errorf("unexpected homework status")

// ParseStatus builds the status-change message for a single submission record.
// Any missing or unrecognised field is an error; no message is produced then.
func ParseStatus(record any) (string, error) {
	obj, ok := record.(map[string]any)
	if !ok {
		return "", ErrRecordNotObject
	}

	name, ok := obj["homework_name"].(string)
	if !ok {
		return "", ErrMissingHomeworkName
	}

	rawStatus, _ := obj["status"].(string)
	verdict, ok := Verdicts[Status(rawStatus)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, rawStatus)
	}

	return FormatStatusChange(name, verdict), nil
}

// FormatStatusChange renders the chat message for a verdict.
func FormatStatusChange(homeworkName, verdict string) string {
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", homeworkName, verdict)
}
