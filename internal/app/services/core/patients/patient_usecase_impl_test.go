package patients

import (
	"context"
	"testing"

	"github.com/Looping69/Telehealth-System-sub002/internal/app/services/fhir/mockfhir"
	"github.com/Looping69/Telehealth-System-sub002/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testPatientUsecase PatientUsecase

func setupPatientUsecase(t *testing.T) PatientUsecase {
	if testPatientUsecase != nil {
		return testPatientUsecase
	}

	backend, err := mockfhir.NewMockBackend(zap.NewNop())
	assert.NoError(t, err)

	testPatientUsecase = NewPatientUsecase(backend, zap.NewNop())
	return testPatientUsecase
}

func TestPatientUsecase_SearchPatients(t *testing.T) {
	uc := setupPatientUsecase(t)
	ctx := context.Background()

	t.Run("All Patients", func(t *testing.T) {
		patients, total, err := uc.SearchPatients(ctx, &requests.SearchPatient{
			Pagination: &requests.Pagination{Page: 1, PageSize: 10},
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, patients, 3)
	})

	t.Run("Filter by Name", func(t *testing.T) {
		patients, total, err := uc.SearchPatients(ctx, &requests.SearchPatient{
			Name:       "chen",
			Pagination: &requests.Pagination{Page: 1, PageSize: 10},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "patient-002", patients[0].ID)
	})

	t.Run("Page Size Caps the Result", func(t *testing.T) {
		patients, total, err := uc.SearchPatients(ctx, &requests.SearchPatient{
			Pagination: &requests.Pagination{Page: 1, PageSize: 2},
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, total, "total counts all matches")
		assert.Len(t, patients, 2)
	})
}

func TestPatientUsecase_CreatePatient(t *testing.T) {
	uc := setupPatientUsecase(t)
	ctx := context.Background()

	created, err := uc.CreatePatient(ctx, &requests.CreatePatient{
		FamilyName: "Nguyen",
		GivenNames: []string{"Thao"},
		Gender:     "female",
		BirthDate:  "1990-04-18",
		Email:      "thao.nguyen@example.com",
		Phone:      "+1-555-0144",
		Identifier: "MRN-2001",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active, "new patients start active")

	assert.Len(t, created.Name, 1)
	assert.Equal(t, "Nguyen", created.Name[0].Family)
	assert.Equal(t, []string{"Thao"}, created.Name[0].Given)

	assert.Len(t, created.Identifier, 1)
	assert.Equal(t, "MRN-2001", created.Identifier[0].Value)

	var systems []string
	for _, telecom := range created.Telecom {
		systems = append(systems, telecom.System)
	}
	assert.Contains(t, systems, "email")
	assert.Contains(t, systems, "phone")

	fetched, err := uc.GetPatientByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestPatientUsecase_UpdatePatient(t *testing.T) {
	uc := setupPatientUsecase(t)
	ctx := context.Background()

	inactive := false
	updated, err := uc.UpdatePatient(ctx, &requests.UpdatePatient{
		ID:         "patient-001",
		FamilyName: "Johnson-Reed",
		GivenNames: []string{"Sarah", "Marie"},
		Gender:     "female",
		BirthDate:  "1985-03-12",
		Email:      "sarah.reed@example.com",
		Active:     &inactive,
	})
	assert.NoError(t, err)
	assert.Equal(t, "patient-001", updated.ID)
	assert.Equal(t, "Johnson-Reed", updated.Name[0].Family)
	assert.False(t, updated.Active)
}

func TestPatientUsecase_DeletePatient(t *testing.T) {
	uc := setupPatientUsecase(t)
	ctx := context.Background()

	assert.NoError(t, uc.DeletePatient(ctx, "patient-003"))

	_, err := uc.GetPatientByID(ctx, "patient-003")
	assert.Error(t, err)
}
