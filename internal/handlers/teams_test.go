package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamRoundtrip(t *testing.T) {
	api := setupAPI(t)
	admin := api.adminToken()

	w := api.request(t, http.MethodPost, "/api/teams", map[string]interface{}{
		"name":    "Rajasthan Royals",
		"city":    "Jaipur",
		"coach":   "Kumar Sangakkara",
		"captain": "Sanju Samson",
		"founded": 2008,
	}, admin)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := dataOf(t, w)
	require.NotEmpty(t, data["id"])
	assert.Equal(t, "Rajasthan Royals", data["name"])
	assert.Equal(t, float64(2008), data["founded"])

	got := api.request(t, http.MethodGet, "/api/teams/"+data["id"].(string), nil, "")
	require.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "Jaipur", dataOf(t, got)["city"])
}

func TestCreateTeamRequiresName(t *testing.T) {
	api := setupAPI(t)

	w := api.request(t, http.MethodPost, "/api/teams", map[string]interface{}{
		"city": "Chennai",
	}, api.adminToken())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	details := decodeBody(t, w)["details"].(map[string]interface{})
	assert.Equal(t, "This field is required.", details["name"])
}

func TestListTeamsSortedAndSearchable(t *testing.T) {
	api := setupAPI(t)
	createTeam(t, "Mumbai Indians")
	createTeam(t, "Chennai Super Kings")
	createTeam(t, "Kolkata Knight Riders")

	all := api.request(t, http.MethodGet, "/api/teams", nil, "")
	require.Equal(t, http.StatusOK, all.Code)

	names := []string{}
	for _, row := range listOf(t, all) {
		names = append(names, row.(map[string]interface{})["name"].(string))
	}
	assert.Equal(t, []string{"Chennai Super Kings", "Kolkata Knight Riders", "Mumbai Indians"}, names)

	filtered := api.request(t, http.MethodGet, "/api/teams?search=CHENNAI", nil, "")
	assert.Len(t, listOf(t, filtered), 1)
}

func TestGetTeamNotFound(t *testing.T) {
	api := setupAPI(t)

	w := api.request(t, http.MethodGet, "/api/teams/missing", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Team not found", decodeBody(t, w)["error"])
}

func TestUpdateTeamPartialAndBlankClears(t *testing.T) {
	api := setupAPI(t)
	admin := api.adminToken()

	created := api.request(t, http.MethodPost, "/api/teams", map[string]interface{}{
		"name":  "Delhi Capitals",
		"city":  "Delhi",
		"coach": "Ricky Ponting",
	}, admin)
	require.Equal(t, http.StatusCreated, created.Code)
	id := dataOf(t, created)["id"].(string)

	w := api.request(t, http.MethodPatch, "/api/teams/"+id, map[string]interface{}{
		"coach": "",
		"city":  "New Delhi",
	}, admin)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := dataOf(t, w)
	assert.Equal(t, "New Delhi", data["city"])
	assert.Nil(t, data["coach"])
	assert.Equal(t, "Delhi Capitals", data["name"])
}

func TestUpdateTeamEmptyPayload(t *testing.T) {
	api := setupAPI(t)
	team := createTeam(t, "Punjab Kings")

	w := api.request(t, http.MethodPut, "/api/teams/"+team.ID, map[string]interface{}{}, api.adminToken())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No fields to update", decodeBody(t, w)["error"])
}

func TestDeleteTeamOrphansPlayers(t *testing.T) {
	api := setupAPI(t)
	admin := api.adminToken()
	team := createTeam(t, "Lucknow Super Giants")

	created := api.request(t, http.MethodPost, "/api/players", map[string]interface{}{
		"name":    "KL Rahul",
		"role":    "Wicketkeeper Batter",
		"team_id": team.ID,
	}, admin)
	require.Equal(t, http.StatusCreated, created.Code)
	playerID := dataOf(t, created)["id"].(string)

	deleted := api.request(t, http.MethodDelete, "/api/teams/"+team.ID, nil, admin)
	assert.Equal(t, http.StatusOK, deleted.Code)
	assert.Equal(t, true, decodeBody(t, deleted)["success"])

	// The player survives with a dangling reference and no joined name.
	player := api.request(t, http.MethodGet, "/api/players/"+playerID, nil, "")
	require.Equal(t, http.StatusOK, player.Code)
	assert.Equal(t, team.ID, dataOf(t, player)["team_id"])
	assert.Nil(t, dataOf(t, player)["team_name"])

	missing := api.request(t, http.MethodGet, "/api/teams/"+team.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestTeamWritesRequireAdmin(t *testing.T) {
	api := setupAPI(t)

	w := api.request(t, http.MethodPost, "/api/teams", map[string]interface{}{
		"name": "Sunrisers Hyderabad",
	}, api.viewerToken())

	assert.Equal(t, http.StatusForbidden, w.Code)
}
