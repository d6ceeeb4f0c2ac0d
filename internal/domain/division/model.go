package division

import "fmt"

// Division numbers as stored.
const (
	SundayD1    = 1
	SundayD2    = 2
	SundayDraft = 3
	MondayCoed  = 4
)

type Division struct {
	ID     int64
	Number int
}

func (d Division) DisplayName() string {
	return DisplayName(d.Number)
}

func (d Division) ShortName() string {
	return ShortName(d.Number)
}

func DisplayName(number int) string {
	switch number {
	case SundayD1:
		return "Sunday D1"
	case SundayD2:
		return "Sunday D2"
	case SundayDraft:
		return "Sunday Draft"
	case MondayCoed:
		return "Monday Coed"
	default:
		return fmt.Sprintf("Division %d", number)
	}
}

func ShortName(number int) string {
	switch number {
	case SundayD1:
		return "D1"
	case SundayD2:
		return "D2"
	case SundayDraft:
		return "Draft"
	case MondayCoed:
		return "Monday Coed"
	default:
		return fmt.Sprintf("Div %d", number)
	}
}
