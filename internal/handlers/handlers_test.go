// internal/handlers/handlers_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/igormatos02/timecontrolapi/internal/models"
	"github.com/igormatos02/timecontrolapi/internal/routes"
	"github.com/igormatos02/timecontrolapi/internal/storage"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, storage.Migrate(db))
	return routes.NewRouter(db), db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data, "response %s has no data envelope", w.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Error
}

func TestEmployeeLifecycle(t *testing.T) {
	r, _ := newTestServer(t)

	// create
	w := doJSON(t, r, http.MethodPost, "/employee", gin.H{"login": "jdoe", "name": "Jane Doe"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Employee
	decodeData(t, w, &created)
	require.NotZero(t, created.ID)
	require.Equal(t, "jdoe", created.Login)

	// filtered list
	w = doJSON(t, r, http.MethodGet, "/employee?name=Jane", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Employee
	decodeData(t, w, &listed)
	require.Len(t, listed, 1)
	require.Equal(t, created.ID, listed[0].ID)

	// update
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/employee/%d", created.ID),
		gin.H{"login": "jdoe2", "name": "Jane Doe"})
	require.Equal(t, http.StatusOK, w.Code)

	// read back
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/employee/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Employee
	decodeData(t, w, &got)
	require.Equal(t, "jdoe2", got.Login)
	require.Equal(t, "Jane Doe", got.Name)

	// delete, then gone
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/employee/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/employee/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeListNoFilterReturnsAll(t *testing.T) {
	r, db := newTestServer(t)

	require.NoError(t, db.Create(&models.Employee{Login: "a", Name: "A"}).Error)
	require.NoError(t, db.Create(&models.Employee{Login: "b", Name: "B"}).Error)

	w := doJSON(t, r, http.MethodGet, "/employee", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Employee
	decodeData(t, w, &listed)
	require.Len(t, listed, 2)
}

func TestEmployeeInvalidID(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/employee/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, errorMessage(t, w), "id")
}

func TestEmployeeUpdateMissingIs404(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPut, "/employee/42", gin.H{"login": "x", "name": "y"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmployeeInvalidBody(t *testing.T) {
	r, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/employee", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProjectLifecycle(t *testing.T) {
	r, db := newTestServer(t)

	team := models.Team{Name: "Platform"}
	require.NoError(t, db.Create(&team).Error)

	w := doJSON(t, r, http.MethodPost, "/project",
		gin.H{"io": "IO-100", "name": "Billing", "teamId": team.ID})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Project
	decodeData(t, w, &created)
	require.Equal(t, team.ID, created.TeamID)

	w = doJSON(t, r, http.MethodGet, "/project?io=io-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Project
	decodeData(t, w, &listed)
	require.Len(t, listed, 1)
}

func TestAttendanceLifecycle(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/attendance",
		gin.H{"date": "2024-05-02", "projectId": 1, "employeeId": 2, "observation": "remote"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Attendance
	decodeData(t, w, &created)
	require.Equal(t, "2024-05-02", created.Date)

	w = doJSON(t, r, http.MethodGet, "/attendance?employeeId=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listed []models.Attendance
	decodeData(t, w, &listed)
	require.Len(t, listed, 1)

	w = doJSON(t, r, http.MethodGet, "/attendance?employeeId=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	decodeData(t, w, &listed)
	require.Empty(t, listed)
}

func TestTeamMembership(t *testing.T) {
	r, db := newTestServer(t)

	team := models.Team{Name: "Platform"}
	emp := models.Employee{Login: "jdoe", Name: "Jane Doe"}
	require.NoError(t, db.Create(&team).Error)
	require.NoError(t, db.Create(&emp).Error)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/team/%d/employee/%d", team.ID, emp.ID), nil)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestTeamMembershipMissingRows(t *testing.T) {
	r, db := newTestServer(t)

	team := models.Team{Name: "Platform"}
	emp := models.Employee{Login: "jdoe", Name: "Jane Doe"}
	require.NoError(t, db.Create(&team).Error)
	require.NoError(t, db.Create(&emp).Error)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/team/999/employee/%d", emp.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, errorMessage(t, w), "team")

	w = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/team/%d/employee/999", team.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, errorMessage(t, w), "employee")

	// no phantom team appeared from the rejected link
	w = doJSON(t, r, http.MethodGet, "/team/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReportValidation(t *testing.T) {
	r, _ := newTestServer(t)

	tests := []struct {
		path  string
		field string
	}{
		{"/report/abc/2/2024/5", "teamId"},
		{"/report/1/xyz/2024/5", "employeeId"},
		{"/report/1/2/20x4/5", "year"},
		{"/report/1/2/2024/may", "month"},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, tc.path, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Contains(t, errorMessage(t, w), tc.field)
		})
	}
}

func TestReportEmptyIsOK(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/report/1/2/2024/5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []json.RawMessage
	decodeData(t, w, &rows)
	require.Empty(t, rows)
}

func TestReportEndToEnd(t *testing.T) {
	r, db := newTestServer(t)

	team := models.Team{Name: "Platform"}
	emp := models.Employee{Login: "jdoe", Name: "Jane Doe"}
	require.NoError(t, db.Create(&team).Error)
	require.NoError(t, db.Create(&emp).Error)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/team/%d/employee/%d", team.ID, emp.ID), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	project := models.Project{IO: "IO-100", Name: "Billing", TeamID: team.ID}
	require.NoError(t, db.Create(&project).Error)
	require.NoError(t, db.Create(&models.Report{
		Year: 2024, Month: 5, Total: 8,
		ProjectID: project.ID, TeamID: team.ID, EmployeeID: emp.ID,
	}).Error)

	w = doJSON(t, r, http.MethodGet,
		fmt.Sprintf("/report/%d/%d/2024/5", team.ID, emp.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []struct {
		IO           string   `json:"io"`
		ProjectName  string   `json:"projectName"`
		TeamName     string   `json:"teamName"`
		EmployeeName string   `json:"employeeName"`
		Total        *float64 `json:"total"`
	}
	decodeData(t, w, &rows)
	require.Len(t, rows, 1)
	require.Equal(t, "IO-100", rows[0].IO)
	require.Equal(t, "Platform", rows[0].TeamName)
	require.Equal(t, "Jane Doe", rows[0].EmployeeName)
	require.NotNil(t, rows[0].Total)
	require.Equal(t, float64(8), *rows[0].Total)
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
