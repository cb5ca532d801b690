/*****************************************************************************************************************/

//	@author		Michael Roberts <michael@observerly.com>
//	@package	@observerly/healpix
//	@license	Copyright © 2021-2025 observerly

/*****************************************************************************************************************/

package moc

/*****************************************************************************************************************/

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/observerly/healpix/pkg/healpix"
	"github.com/observerly/healpix/pkg/rangeset"
)

/*****************************************************************************************************************/

// Record is the gorm-mapped row persisting a single MOC's interval set. Intervals are stored
// as a flat "lo:hi,lo:hi,..." string rather than a side table, since a MOC's RangeSet is
// itself already the most compact representation of its pixel coverage.
type Record struct {
	ID        string `gorm:"primaryKey"`
	OrderMax  int64
	NsideMax  int64
	Intervals string
	CreatedAt time.Time
}

/*****************************************************************************************************************/

// TableName pins the table name rather than letting gorm pluralise the struct name, so the
// schema stays stable if Record is ever renamed.
func (Record) TableName() string {
	return "mocs"
}

/*****************************************************************************************************************/

// Store persists MOCs to a SQLite database via gorm.
type Store struct {
	db *gorm.DB
}

/*****************************************************************************************************************/

// OpenStore opens (creating if necessary) a SQLite database at path and migrates the mocs
// table.
func OpenStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("moc: failed to open store at %q: %w", path, err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("moc: failed to migrate schema: %w", err)
	}

	return &Store{db: db}, nil
}

/*****************************************************************************************************************/

// Save persists m and returns the ULID assigned to the new record.
func (s *Store) Save(m *MOC) (string, error) {
	id, err := newULID()
	if err != nil {
		return "", err
	}

	record := Record{
		ID:        id,
		OrderMax:  m.OrderMax,
		NsideMax:  m.NsideMax,
		Intervals: encodeIntervals(m.Pixels),
		CreatedAt: time.Now(),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("moc: failed to save record: %w", err)
	}

	return id, nil
}

/*****************************************************************************************************************/

// Load reconstructs the MOC previously saved under id.
func (s *Store) Load(id string) (*MOC, error) {
	var record Record

	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("moc: failed to load record %q: %w", id, err)
	}

	ranges, err := decodeIntervals(record.Intervals)
	if err != nil {
		return nil, err
	}

	return NewFromRanges(record.OrderMax, ranges)
}

/*****************************************************************************************************************/

// Delete removes the record previously saved under id.
func (s *Store) Delete(id string) error {
	if err := s.db.Delete(&Record{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("moc: failed to delete record %q: %w", id, err)
	}

	return nil
}

/*****************************************************************************************************************/

func newULID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", fmt.Errorf("moc: failed to generate id: %w", err)
	}

	return id.String(), nil
}

/*****************************************************************************************************************/

func encodeIntervals(pixels *rangeset.RangeSet) string {
	n := pixels.Count()

	parts := make([]string, 0, n)

	for i := 0; i < n; i++ {
		lo, hi := pixels.IntervalAt(i)
		parts = append(parts, fmt.Sprintf("%d:%d", lo, hi))
	}

	return strings.Join(parts, ",")
}

/*****************************************************************************************************************/

func decodeIntervals(raw string) ([][2]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ranges := make([][2]int64, 0, len(parts))

	for _, p := range parts {
		loHi := strings.SplitN(p, ":", 2)

		if len(loHi) != 2 {
			return nil, fmt.Errorf("%w: malformed interval %q", healpix.ErrInternal, p)
		}

		lo, err := strconv.ParseInt(loHi[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed interval %q: %v", healpix.ErrInternal, p, err)
		}

		hi, err := strconv.ParseInt(loHi[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed interval %q: %v", healpix.ErrInternal, p, err)
		}

		ranges = append(ranges, [2]int64{lo, hi})
	}

	return ranges, nil
}

/*****************************************************************************************************************/
