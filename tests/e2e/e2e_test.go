package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ppetrack/internal/database"
	"ppetrack/internal/middleware"
	"ppetrack/internal/modules/audit"
	"ppetrack/internal/modules/inspection"
	"ppetrack/internal/modules/notification"
	"ppetrack/internal/modules/registry"
	"ppetrack/internal/modules/report"
	"ppetrack/internal/repository"
)

type TestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorDetail    `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupSuite(t *testing.T) *TestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	personRepo := repository.NewPersonRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)
	signoffRepo := repository.NewSignoffRepository(db)

	notifService := notification.NewService(notification.NewRepository(db))
	registryService := registry.NewService(personRepo, equipmentRepo, "Northgate", []string{"condemned", "lost", "stolen"})
	inspectionService := inspection.NewService(inspectionRepo, personRepo, equipmentRepo, notifService)
	reportService := report.NewService(personRepo, inspectionRepo)
	auditService := audit.NewService(signoffRepo, reportService)

	r := gin.New()
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	registry.NewHandler(registryService).RegisterRoutes(v1)
	inspection.NewHandler(inspectionService).RegisterRoutes(v1)
	report.NewHandler(reportService).RegisterRoutes(v1)
	audit.NewHandler(auditService).RegisterRoutes(v1)
	notification.NewHandler(notifService).RegisterRoutes(v1)

	return &TestSuite{router: r, db: db}
}

func (s *TestSuite) doJSON(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func (s *TestSuite) importCSV(t *testing.T, csvData string) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "export.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csvData))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

const exportCSV = "Employee Ref,Employee Name,Station,Product ID,Garment Description,Size,Current Condition\n" +
	"E100,A Smith,Northgate,B1001,COAT GOLD PBI MATRIX,M,Good\n" +
	"E100,A Smith,Northgate,B1002,LEATHER FIRE BOOT,10,Good\n" +
	"E101,B Jones,Northgate,B1003,F1XF HELMET,,Good\n" +
	",,,B1004,CONTINUATION ROW,,\n" +
	"E102,C Doyle,Southside,B1005,HOOD,,Good\n" +
	"E101,B Jones,Northgate,B1006,OLD BOOT,9,CONDEMNED 2024\n"

func TestFullInspectionLifecycle(t *testing.T) {
	s := setupSuite(t)

	// 1. bulk import
	w, resp := s.importCSV(t, exportCSV)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	var sum registry.ImportSummary
	require.NoError(t, json.Unmarshal(resp.Data, &sum))
	assert.Equal(t, 2, sum.PersonsTouched)
	assert.Equal(t, 3, sum.ItemsImported)
	assert.Equal(t, 3, sum.ItemsSkipped)

	// 2. roster
	w, resp = s.doJSON(t, http.MethodGet, "/api/v1/people", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var roster []registry.RosterEntry
	require.NoError(t, json.Unmarshal(resp.Data, &roster))
	require.Len(t, roster, 2)

	var smith, jones registry.RosterEntry
	for _, p := range roster {
		switch p.Reference {
		case "E100":
			smith = p
		case "E101":
			jones = p
		}
	}
	require.NotEmpty(t, smith.ID)
	assert.Equal(t, int64(2), smith.ItemCount)
	assert.Equal(t, int64(1), jones.ItemCount)

	// 3. no cycle yet
	w, _ = s.doJSON(t, http.MethodGet, "/api/v1/inspections/"+smith.ID+"/2026-03", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 4. submit the monthly check, one defect
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/inspections", inspection.SubmitRequest{
		PersonID: smith.ID,
		Month:    "2026-03",
		Results: []inspection.ResultRequest{
			{Barcode: "B1001", Condition: "defect", Notes: "torn cuff"},
			{Barcode: "B1002", Condition: "good", Notes: "stale draft note"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", resp)

	// 5. resubmission for the same month is rejected
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/inspections", inspection.SubmitRequest{
		PersonID: smith.ID,
		Month:    "2026-03",
		Results: []inspection.ResultRequest{
			{Barcode: "B1001", Condition: "good"},
			{Barcode: "B1002", Condition: "good"},
		},
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DUPLICATE_CYCLE", resp.Error.Code)

	// 6. the stored cycle keeps the first submission; good results carry no notes
	w, resp = s.doJSON(t, http.MethodGet, "/api/v1/inspections/"+smith.ID+"/2026-03", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cycle struct {
		Month   string `json:"month"`
		Results []struct {
			Barcode   string `json:"barcode"`
			Condition string `json:"condition"`
			Notes     string `json:"notes"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &cycle))
	require.Len(t, cycle.Results, 2)
	assert.Equal(t, "defect", cycle.Results[0].Condition)
	assert.Equal(t, "torn cuff", cycle.Results[0].Notes)
	assert.Equal(t, "good", cycle.Results[1].Condition)
	assert.Empty(t, cycle.Results[1].Notes)

	// 7. monthly summary
	w, resp = s.doJSON(t, http.MethodGet, "/api/v1/reports/monthly/2026-03", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var monthly report.MonthlySummary
	require.NoError(t, json.Unmarshal(resp.Data, &monthly))
	assert.Equal(t, 2, monthly.Total)
	assert.Equal(t, 1, monthly.Complete)
	assert.Equal(t, 1, monthly.Incomplete)
	for _, st := range monthly.PerPerson {
		if st.PersonID == smith.ID {
			assert.Equal(t, "complete", st.Status)
			assert.GreaterOrEqual(t, st.OpenDefectCount, int64(1))
		} else {
			assert.Equal(t, "incomplete", st.Status)
		}
	}

	// 8. quarterly grid: only March done for Smith
	w, resp = s.doJSON(t, http.MethodGet, "/api/v1/reports/quarterly/2026-Q1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var quarterly report.QuarterlyCompleteness
	require.NoError(t, json.Unmarshal(resp.Data, &quarterly))
	assert.Equal(t, []string{"2026-01", "2026-02", "2026-03"}, quarterly.Months)
	for _, st := range quarterly.PerPerson {
		assert.False(t, st.AllComplete)
		if st.PersonID == smith.ID {
			assert.True(t, st.MonthFlags["2026-03"])
			assert.False(t, st.MonthFlags["2026-01"])
		}
	}

	// 9. sign off the quarter despite the incomplete grid
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/audits", audit.SignOffRequest{
		Quarter:    "2026-Q1",
		SignerName: "W Officer",
		Notes:      "reviewed with station manager",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var signed struct {
		ID         string `json:"id"`
		SignerName string `json:"signer_name"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &signed))
	require.NotEmpty(t, signed.ID)

	// 10. first signer wins, second attempt is rejected
	w, resp = s.doJSON(t, http.MethodPost, "/api/v1/audits", audit.SignOffRequest{
		Quarter:    "2026-Q1",
		SignerName: "Someone Else",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ALREADY_SIGNED_OFF", resp.Error.Code)

	w, resp = s.doJSON(t, http.MethodGet, "/api/v1/audits/2026-Q1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stored struct {
		SignerName string `json:"signer_name"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &stored))
	assert.Equal(t, "W Officer", stored.SignerName)

	// 11. quarter status shows signature plus the grid
	w, resp = s.doJSON(t, http.MethodGet, "/api/v1/audits/2026-Q1/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status audit.QuarterStatus
	require.NoError(t, json.Unmarshal(resp.Data, &status))
	assert.True(t, status.Signed)
	require.NotNil(t, status.Completeness)
	assert.Len(t, status.Completeness.Months, 3)
}

func TestReimportUpsertsByBarcode(t *testing.T) {
	s := setupSuite(t)

	_, resp := s.importCSV(t, exportCSV)
	var first registry.ImportSummary
	require.NoError(t, json.Unmarshal(resp.Data, &first))
	require.Equal(t, 3, first.ItemsImported)

	// same barcode, new description and owner: replaced, not duplicated
	reimport := "Employee Ref,Employee Name,Station,Product ID,Garment Description,Size,Current Condition\n" +
		"E101,B Jones,Northgate,B1001,REISSUED COAT GOLD PBI,L,Good\n"
	_, resp = s.importCSV(t, reimport)
	var second registry.ImportSummary
	require.NoError(t, json.Unmarshal(resp.Data, &second))
	assert.Equal(t, 1, second.ItemsImported)

	var count int64
	require.NoError(t, s.db.Raw("SELECT COUNT(1) FROM equipment_items WHERE barcode = ?", "B1001").Scan(&count).Error)
	assert.Equal(t, int64(1), count)

	var desc string
	require.NoError(t, s.db.Raw("SELECT description FROM equipment_items WHERE barcode = ?", "B1001").Scan(&desc).Error)
	assert.Equal(t, "REISSUED COAT GOLD PBI", desc)

	// stale barcodes from the first export are retained as-is
	var total int64
	require.NoError(t, s.db.Raw("SELECT COUNT(1) FROM equipment_items").Scan(&total).Error)
	assert.Equal(t, int64(3), total)
}

func TestSubmitRejectsUnownedBarcode(t *testing.T) {
	s := setupSuite(t)
	s.importCSV(t, exportCSV)

	_, resp := s.doJSON(t, http.MethodGet, "/api/v1/people", nil)
	var roster []registry.RosterEntry
	require.NoError(t, json.Unmarshal(resp.Data, &roster))

	var smith registry.RosterEntry
	for _, p := range roster {
		if p.Reference == "E100" {
			smith = p
		}
	}

	w, resp := s.doJSON(t, http.MethodPost, "/api/v1/inspections", inspection.SubmitRequest{
		PersonID: smith.ID,
		Month:    "2026-04",
		Results: []inspection.ResultRequest{
			{Barcode: "B1001", Condition: "good"},
			{Barcode: "B1002", Condition: "good"},
			{Barcode: "B1003", Condition: "good"}, // belongs to Jones
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "UNKNOWN_ITEM", resp.Error.Code)

	// nothing was committed
	w, _ = s.doJSON(t, http.MethodGet, fmt.Sprintf("/api/v1/inspections/%s/2026-04", smith.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
