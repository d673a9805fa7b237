package insights

import (
	"fmt"
	"time"
)

var turkishMonths = [12]string{
	"Ocak", "Şubat", "Mart", "Nisan", "Mayıs", "Haziran",
	"Temmuz", "Ağustos", "Eylül", "Ekim", "Kasım", "Aralık",
}

var turkishDays = [7]string{
	"Pazar", "Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma", "Cumartesi",
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// dateLabel renders the group heading for a calendar day: "Bugün", "Dün",
// weekday plus day-month within the past week, day-month otherwise.
func dateLabel(now, day time.Time) string {
	today := dateOnly(now)
	d := dateOnly(day)
	diffDays := int(today.Sub(d).Hours() / 24)

	month := turkishMonths[d.Month()-1]
	switch {
	case diffDays == 0:
		return "Bugün"
	case diffDays == 1:
		return "Dün"
	case diffDays > 1 && diffDays < 7:
		return fmt.Sprintf("%s, %d %s", turkishDays[d.Weekday()], d.Day(), month)
	default:
		return fmt.Sprintf("%d %s", d.Day(), month)
	}
}
