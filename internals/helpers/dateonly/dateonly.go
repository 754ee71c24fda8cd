// file: internals/helpers/dateonly/dateonly.go
package dateonly

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
)

// Timezone default produk. Dipakai kalau profil user belum punya timezone
// atau timezone-nya tidak dikenal.
const DefaultTimezone = "Asia/Jakarta"

const Layout = "2006-01-02"

// LoadLocationOrDefault resolve IANA timezone string ke *time.Location:
// 1) Coba LoadLocation(tz)
// 2) Kalau kosong/tidak valid: fallback ke Asia/Jakarta
// 3) Fallback terakhir: time.UTC
func LoadLocationOrDefault(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
		log.Printf("[WARN] Timezone %q tidak dikenal, fallback ke %s", tz, DefaultTimezone)
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// LocalDate mengubah instant (UTC) menjadi tanggal kalender lokal di timezone
// user, lalu dinormalisasi ke midnight UTC supaya aritmetika hari bebas DST.
// Tanggal hasil resolve ini disimpan sekali saat event dibuat dan tidak pernah
// dihitung ulang kalau user ganti timezone.
func LocalDate(instant time.Time, tz string) time.Time {
	local := instant.In(LoadLocationOrDefault(tz))
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today = tanggal kalender "hari ini" menurut timezone user.
func Today(tz string) time.Time {
	return LocalDate(time.Now(), tz)
}

// Normalize membuang komponen jam dari sebuah time.Time (hasil scan kolom date
// dari Postgres bisa membawa zona sesi).
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween menghitung selisih hari kalender b - a. Kedua argumen harus
// sudah dinormalisasi ke midnight UTC (keluaran LocalDate/Normalize).
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// AddDays menambah n hari kalender.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

/* ===============================
   DateOnly: tipe kolom DATE
=================================*/

// DateOnly menyimpan tanggal kalender tanpa komponen waktu, untuk kolom
// Postgres bertipe DATE. JSON-nya "YYYY-MM-DD".
type DateOnly struct{ time.Time }

func From(t time.Time) DateOnly {
	return DateOnly{Time: Normalize(t)}
}

func Parse(s string) (DateOnly, error) {
	var d DateOnly
	return d, d.parse(s)
}

func (d *DateOnly) parse(s string) error {
	s = strings.TrimSpace(s)
	t, err := time.Parse(Layout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Scan: terima time.Time atau string "YYYY-MM-DD"
func (d *DateOnly) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		d.Time = Normalize(x)
		return nil
	case []byte:
		return d.parse(string(x))
	case string:
		return d.parse(x)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("dateonly: unsupported Scan type %T", v)
	}
}

func (d DateOnly) Value() (driver.Value, error) {
	if d.Time.IsZero() {
		return nil, nil
	}
	return d.Format(Layout), nil
}

func (DateOnly) GormDataType() string { return "date" }

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(Layout))
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(s)
}
