package repositories

import "github.com/moldworks/moldtrack/pkg/domain/entities"

// ShiftRecordRepository provides access to saved shift records
type ShiftRecordRepository interface {
	GetShiftRecords() ([]entities.ShiftRecord, error)
	GetShiftRecordsForMachine(machineID entities.MachineID) ([]entities.ShiftRecord, error)
	SaveShiftRecord(record *entities.ShiftRecord) error
	LoadShiftRecords(records []*entities.ShiftRecord) error
}
