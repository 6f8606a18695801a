package memory

import (
	"sort"

	"github.com/moldworks/moldtrack/pkg/domain/entities"
	"github.com/moldworks/moldtrack/pkg/domain/repositories"
)

// ShiftRecordRepository provides in-memory shift record storage. The store
// is append-only: a correction is a new record saved under the same date
// key, never an update in place.
type ShiftRecordRepository struct {
	records []entities.ShiftRecord
}

// NewShiftRecordRepository creates a new in-memory shift record repository
func NewShiftRecordRepository() *ShiftRecordRepository {
	return &ShiftRecordRepository{
		records: []entities.ShiftRecord{},
	}
}

// Verify interface compliance
var _ repositories.ShiftRecordRepository = (*ShiftRecordRepository)(nil)

// SaveShiftRecord appends a shift record to the store
func (r *ShiftRecordRepository) SaveShiftRecord(record *entities.ShiftRecord) error {
	r.records = append(r.records, *record)
	return nil
}

// LoadShiftRecords loads shift records into the repository
func (r *ShiftRecordRepository) LoadShiftRecords(records []*entities.ShiftRecord) error {
	for _, record := range records {
		if err := r.SaveShiftRecord(record); err != nil {
			return err
		}
	}
	return nil
}

// GetShiftRecords returns every stored shift record sorted by date
func (r *ShiftRecordRepository) GetShiftRecords() ([]entities.ShiftRecord, error) {
	records := make([]entities.ShiftRecord, len(r.records))
	copy(records, r.records)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
	return records, nil
}

// GetShiftRecordsForMachine returns a machine's shift records sorted by date
func (r *ShiftRecordRepository) GetShiftRecordsForMachine(machineID entities.MachineID) ([]entities.ShiftRecord, error) {
	var records []entities.ShiftRecord
	for _, record := range r.records {
		if record.MachineID == machineID {
			records = append(records, record)
		}
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
	return records, nil
}
