package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RachidAzrou/mefen/models"
)

func testVolunteers() []models.Volunteer {
	return []models.Volunteer{
		{ID: 1, FirstName: "Anna", LastName: "Jansen"},
		{ID: 2, FirstName: "Bart", LastName: "Peeters"},
		{ID: 3, FirstName: "Chris", LastName: "Maes"},
	}
}

func testRooms() []models.Room {
	return []models.Room{
		{ID: 1, Name: "Grote zaal"},
		{ID: 2, Name: "Keuken"},
	}
}

func TestFilterQueryMatchesVolunteerName(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-12", false), // Anna Jansen
		planning(2, 2, 1, "2024-06-10", "2024-06-12", false), // Bart Peeters
	}

	for _, query := range []string{"anna", "ANNA", "Anna", "nna j"} {
		result := Filter(plannings, testVolunteers(), testRooms(), query, nil, SortState{})
		assert.Lenf(t, result, 1, "query %q", query)
		assert.Equal(t, uint(1), result[0].ID)
	}
}

func TestFilterQueryMatchesRoomName(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-12", false), // Grote zaal
		planning(2, 2, 2, "2024-06-10", "2024-06-12", false), // Keuken
	}

	result := Filter(plannings, testVolunteers(), testRooms(), "keuken", nil, SortState{})
	assert.Len(t, result, 1)
	assert.Equal(t, uint(2), result[0].ID)
}

func TestFilterUnmatchedQueryReturnsEmpty(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-12", false),
	}

	result := Filter(plannings, testVolunteers(), testRooms(), "zzzz", nil, SortState{})
	assert.Empty(t, result)
}

func TestFilterEmptyQueryMatchesEverything(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-12", false),
		planning(2, 2, 2, "2024-06-15", "2024-06-16", false),
	}

	result := Filter(plannings, testVolunteers(), testRooms(), "", nil, SortState{})
	assert.Len(t, result, 2)
}

func TestFilterDatePredicateInclusive(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-12", false),
		planning(2, 2, 2, "2024-06-15", "2024-06-16", false),
	}

	for _, tc := range []struct {
		date string
		want []uint
	}{
		{"2024-06-10", []uint{1}},
		{"2024-06-12", []uint{1}},
		{"2024-06-13", nil},
		{"2024-06-15", []uint{2}},
	} {
		ref := mustDate(t, tc.date)
		result := Filter(plannings, testVolunteers(), testRooms(), "", &ref, SortState{})
		var ids []uint
		for _, p := range result {
			ids = append(ids, p.ID)
		}
		assert.Equalf(t, tc.want, ids, "date %s", tc.date)
	}
}

func TestFilterCombinesQueryAndDateWithAnd(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-12", false), // Anna, 10-12
		planning(2, 1, 1, "2024-06-20", "2024-06-22", false), // Anna, 20-22
	}

	ref := mustDate(t, "2024-06-11")
	result := Filter(plannings, testVolunteers(), testRooms(), "anna", &ref, SortState{})
	assert.Len(t, result, 1)
	assert.Equal(t, uint(1), result[0].ID)
}

func TestFilterSortToggle(t *testing.T) {
	plannings := []models.Planning{
		planning(2, 1, 1, "2024-06-15", "2024-06-16", false),
		planning(1, 1, 1, "2024-06-10", "2024-06-12", false),
		planning(3, 1, 1, "2024-06-20", "2024-06-22", false),
	}

	ids := func(ps []models.Planning) []uint {
		out := make([]uint, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	// Sort aktif: ascending pada start date
	asc := Filter(plannings, testVolunteers(), testRooms(), "", nil, SortState{Enabled: true})
	assert.Equal(t, []uint{1, 2, 3}, ids(asc))

	// Toggle arah: descending
	desc := Filter(plannings, testVolunteers(), testRooms(), "", nil, SortState{Enabled: true, Descending: true})
	assert.Equal(t, []uint{3, 2, 1}, ids(desc))

	// Sort dimatikan: urutan input dipertahankan
	off := Filter(plannings, testVolunteers(), testRooms(), "", nil, SortState{})
	assert.Equal(t, []uint{2, 1, 3}, ids(off))
}

func TestFilterSortTieBreakOnEndDate(t *testing.T) {
	plannings := []models.Planning{
		planning(1, 1, 1, "2024-06-10", "2024-06-15", false),
		planning(2, 1, 1, "2024-06-10", "2024-06-12", false),
	}

	asc := Filter(plannings, testVolunteers(), testRooms(), "", nil, SortState{Enabled: true})
	assert.Equal(t, uint(2), asc[0].ID)

	desc := Filter(plannings, testVolunteers(), testRooms(), "", nil, SortState{Enabled: true, Descending: true})
	assert.Equal(t, uint(1), desc[0].ID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	plannings := []models.Planning{
		planning(2, 1, 1, "2024-06-15", "2024-06-16", false),
		planning(1, 1, 1, "2024-06-10", "2024-06-12", false),
	}

	_ = Filter(plannings, testVolunteers(), testRooms(), "", nil, SortState{Enabled: true})

	assert.Equal(t, uint(2), plannings[0].ID)
	assert.Equal(t, uint(1), plannings[1].ID)
}

func TestFilterDanglingReferencesNeverMatchText(t *testing.T) {
	// Planning yang menunjuk volunteer/room terhapus tidak pernah cocok
	// dengan query teks, tapi tetap lolos query kosong
	p := models.Planning{ID: 1, StartDate: mustDate(t, "2024-06-10"), EndDate: mustDate(t, "2024-06-12")}

	result := Filter([]models.Planning{p}, testVolunteers(), testRooms(), "anna", nil, SortState{})
	assert.Empty(t, result)

	result = Filter([]models.Planning{p}, testVolunteers(), testRooms(), "", nil, SortState{})
	assert.Len(t, result, 1)
}
