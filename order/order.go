package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/idamrohim/cgv-promo/constant"
	"github.com/idamrohim/cgv-promo/pricing"
)

// Order carries everything the fulfillment operator needs. There is no
// server-side record: rendering this into a WhatsApp deep-link IS the
// submission.
type Order struct {
	CinemaName     string
	LocationName   string
	Date           string // YYYYMMDD
	MovieName      string
	ShowTime       string // HH:MM
	AuditoriumName string
	TicketCount    int
	MainSeats      string
	BackupSeats    string // optional, rendered as "-" when empty
	UnitPrice      int
}

// ValidationError lists the required fields that are still empty. It is the
// one user-blocking error path in the tool.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate checks the required fields before hand-off.
func (o *Order) Validate() error {
	var missing []string
	required := []struct {
		name  string
		empty bool
	}{
		{"cinema name", o.CinemaName == ""},
		{"location", o.LocationName == ""},
		{"date", o.Date == ""},
		{"movie name", o.MovieName == ""},
		{"show time", o.ShowTime == ""},
		{"main seats", o.MainSeats == ""},
		{"ticket count", o.TicketCount < 1},
		{"unit price", o.UnitPrice <= 0},
	}
	for _, f := range required {
		if f.empty {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Message renders the labeled order summary, one bold-marked field per
// line. Field order is part of the contract with the fulfillment side.
func (o *Order) Message() (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	promo, err := pricing.ComputeTimeBasedPromo(o.UnitPrice, o.TicketCount, o.ShowTime)
	if err != nil {
		return "", fmt.Errorf("cannot price order: %w", err)
	}

	backup := o.BackupSeats
	if backup == "" {
		backup = "-"
	}

	lines := []string{
		"*CGV CINEMAS*",
		"",
		"*Nama Bioskop:* " + o.CinemaName,
		"*Nama Daerah/Lokasi:* " + o.LocationName,
		"*Tanggal Film:* " + DisplayDate(o.Date),
		"*Nama Film:* " + o.MovieName,
		"*Jam Film:* " + o.ShowTime,
		"*Studio:* " + o.AuditoriumName,
		fmt.Sprintf("*Jumlah Tiket:* %d", o.TicketCount),
		"*Seat Utama:* " + o.MainSeats,
		"*Seat Cadangan:* " + backup,
		"*Harga 1 Tiket Normal:* " + pricing.FormatRupiah(o.UnitPrice),
		"*Total Harga Normal:* " + pricing.FormatRupiah(promo.Normal),
		"*Total Harga Promo:* " + pricing.FormatRupiah(promo.Promo),
		"*Hemat:* " + pricing.FormatRupiah(promo.Saved),
	}
	return strings.Join(lines, "\n"), nil
}

// WhatsAppURL percent-encodes the summary onto the messaging deep-link.
func (o *Order) WhatsAppURL() (string, error) {
	message, err := o.Message()
	if err != nil {
		return "", err
	}
	return constant.WHATSAPP_URL + url.QueryEscape(message), nil
}

// DisplayDate converts a YYYYMMDD key to the UI-facing DD/MM/YYYY form.
// Unrecognized input passes through untouched.
func DisplayDate(dateKey string) string {
	if len(dateKey) != 8 {
		return dateKey
	}
	return dateKey[6:8] + "/" + dateKey[4:6] + "/" + dateKey[0:4]
}
