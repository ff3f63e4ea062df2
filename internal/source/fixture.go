package source

import "github.com/Veraticus/txnview/internal/model"

// Fixture returns the built-in transaction batch. Each call returns a fresh slice.
func Fixture() []model.Transaction {
	return []model.Transaction{
		model.NewTransaction("T001", "2025-04-17", "First payment", 2000),
		model.NewTransaction("T002", "2025-04-13", "Second payment", 1200),
		model.NewTransaction("T003", "2025-04-14", "Third payment", 4543),
		model.NewTransaction("T004", "2025-04-10", "Fourth payment", 129),
		model.NewTransaction("T005", "2025-04-4", "Fourth payment", 455),
		model.NewTransaction("T006", "2025-04-14", "Fourth payment", 1269),
		model.NewTransaction("T007", "2025-04-18", "Fourth payment", 2346),
		model.NewTransaction("T008", "2025-04-12", "Fourth payment", 233),
		model.NewTransaction("T009", "2025-04-12", "Fourth payment", 20000),
		model.NewTransaction("T010", "2025-04-12", "Fourth payment", 390),
	}
}
