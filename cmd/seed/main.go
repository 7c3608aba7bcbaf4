package main

import (
	"context"
	"log"

	"ppetrack/internal/database"
	"ppetrack/internal/modules/inspection"
	"ppetrack/internal/modules/registry"
	"ppetrack/internal/repository"
)

func main() {
	db, err := database.Connect("ppetrack.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM item_results")
	db.Exec("DELETE FROM inspection_cycles")
	db.Exec("DELETE FROM audit_signoffs")
	db.Exec("DELETE FROM equipment_items")
	db.Exec("DELETE FROM persons")

	ctx := context.Background()
	personRepo := repository.NewPersonRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)

	// Roster and kit via the same pipeline the bulk import uses
	log.Println("Importing demo roster...")
	registryService := registry.NewService(personRepo, equipmentRepo, "Northgate", []string{"condemned", "lost", "stolen"})

	records := []registry.RawRecord{
		{Reference: "E100", Name: "A Smith", Location: "Northgate", Barcode: "B1001", Description: "COAT GOLD PBI MATRIX", Size: "M", Condition: "Good"},
		{Reference: "E100", Name: "A Smith", Location: "Northgate", Barcode: "B1002", Description: "FIREFIGHTER TROUSER GOLD", Size: "M", Condition: "Good"},
		{Reference: "E100", Name: "A Smith", Location: "Northgate", Barcode: "B1003", Description: "LEATHER FIRE BOOT", Size: "10", Condition: "Good"},
		{Reference: "E101", Name: "B Jones", Location: "Northgate", Barcode: "B1004", Description: "HI VIS RESCUE COAT", Size: "L", Condition: "Good"},
		{Reference: "E101", Name: "B Jones", Location: "Northgate", Barcode: "B1005", Description: "F1XF HELMET", Size: "", Condition: "Good"},
		{Reference: "E102", Name: "C Doyle", Location: "Northgate", Barcode: "B1006", Description: "BA FULL FACE MASK", Size: "", Condition: "Good"},
		{Reference: "E102", Name: "C Doyle", Location: "Northgate", Barcode: "B1007", Description: "FLASH HOOD NOMEX", Size: "", Condition: "Good"},
		// filtered out on purpose: wrong site and condemned kit
		{Reference: "E900", Name: "Z Elsewhere", Location: "Southside", Barcode: "B9001", Description: "BOOT", Condition: "Good"},
		{Reference: "E102", Name: "C Doyle", Location: "Northgate", Barcode: "B9002", Description: "OLD COAT GOLD PBI", Condition: "CONDEMNED"},
	}
	sum, err := registryService.Import(ctx, records)
	if err != nil {
		log.Fatal("Import failed:", err)
	}
	log.Printf("Imported: %d persons, %d items, %d skipped", sum.PersonsTouched, sum.ItemsImported, sum.ItemsSkipped)

	// One completed check with a defect, so the dashboards have data
	log.Println("Recording a sample inspection...")
	inspectionService := inspection.NewService(inspectionRepo, personRepo, equipmentRepo, nil)

	smith, err := personRepo.GetByReference(ctx, "E100")
	if err != nil || smith == nil {
		log.Fatal("seeded person missing")
	}

	_, err = inspectionService.SubmitCycle(ctx, inspection.SubmitRequest{
		PersonID: smith.ID,
		Month:    "2026-08",
		Results: []inspection.ResultRequest{
			{Barcode: "B1001", Condition: "good"},
			{Barcode: "B1002", Condition: "defect", Notes: "ripped knee"},
			{Barcode: "B1003", Condition: "good"},
		},
	})
	if err != nil {
		log.Fatal("Sample inspection failed:", err)
	}

	log.Println("Seed complete")
}
