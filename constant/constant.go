package constant

import (
	"os"
	"path/filepath"
)

const (
	API_BASE = "https://v2-api.cgv.id"

	// The order hand-off is a WhatsApp deep-link; the encoded text is the whole order.
	WHATSAPP_URL = "https://wa.me/6282296813933?text="

	// Wire format for schedule dates (YYYYMMDD, no separators, local wall-clock).
	DATE_KEY_LAYOUT = "20060102"
)

var (
	FilesPath string
)

func init() {
	wd, err := os.Getwd()
	if err != nil {
		panic("cannot determine working directory: " + err.Error())
	}
	FilesPath = filepath.Join(wd, "files")
}
