package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/pawfinder/adoption-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type centerResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Breeds      []string `json:"breeds"`
	AddedBy     string   `json:"addedBy"`
	AddedByName *string  `json:"addedByName"`
}

func TestCenterHandler_List(t *testing.T) {
	ts := testutil.NewTestServer(t)

	creator, _ := testutil.NewUserBuilder().
		WithName("Grace", "Hopper").
		Build(t, ts.DB.DB)
	testutil.NewCenterBuilder().
		WithLocation("Austin", "TX").
		WithAddedBy(creator.ID).
		Build(t, ts.DB.DB)
	testutil.NewCenterBuilder().
		WithLocation("Dallas", "TX").
		WithAddedBy(creator.ID).
		Build(t, ts.DB.DB)
	testutil.NewCenterBuilder().
		WithLocation("Austin", "MN").
		WithAddedBy(creator.ID).
		Build(t, ts.DB.DB)

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "no filters", query: "", wantCount: 3},
		{name: "state filter", query: "?state=TX", wantCount: 2},
		{name: "city filter", query: "?city=Austin", wantCount: 2},
		{name: "state and city combine with AND", query: "?state=TX&city=Austin", wantCount: 1},
		{name: "no matches", query: "?state=WA", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL("/api/centers" + tt.query))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)

			var centers []centerResponse
			testutil.AssertJSONResponse(t, resp, &centers)
			assert.Len(t, centers, tt.wantCount)

			for _, c := range centers {
				require.NotNil(t, c.AddedByName)
				assert.Equal(t, "Grace Hopper", *c.AddedByName)
			}
		})
	}
}

func TestCenterHandler_CreateRequiresAuth(t *testing.T) {
	ts := testutil.NewTestServer(t)

	body, _ := json.Marshal(map[string]interface{}{
		"name":    "Happy Paws",
		"address": "1 Bark Ave",
		"city":    "Austin",
		"state":   "TX",
		"phone":   "555-0101",
	})

	resp, err := http.Post(ts.URL("/api/centers"), "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Please authenticate.")
}

func TestCenterHandler_Create(t *testing.T) {
	ts := testutil.NewTestServer(t)

	user, token := testutil.NewUserBuilder().
		WithName("Alan", "Turing").
		BuildAndAuthenticate(t, ts)

	tests := []struct {
		name           string
		request        map[string]interface{}
		expectedStatus int
		checkResponse  func(*testing.T, *http.Response)
	}{
		{
			name: "successful creation",
			request: map[string]interface{}{
				"name":    "Happy Paws",
				"address": "1 Bark Ave",
				"city":    "Austin",
				"state":   "TX",
				"phone":   "555-0101",
				"breeds":  []string{"labrador", "beagle"},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var center centerResponse
				testutil.AssertJSONResponse(t, resp, &center)
				assert.Equal(t, "Happy Paws", center.Name)
				assert.Equal(t, []string{"labrador", "beagle"}, center.Breeds)
				assert.Equal(t, user.ID.String(), center.AddedBy)
			},
		},
		{
			name: "forged addedBy is ignored",
			request: map[string]interface{}{
				"name":    "Sneaky Paws",
				"address": "2 Bark Ave",
				"city":    "Austin",
				"state":   "TX",
				"phone":   "555-0102",
				"addedBy": "11111111-1111-1111-1111-111111111111",
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *http.Response) {
				var center centerResponse
				testutil.AssertJSONResponse(t, resp, &center)
				assert.Equal(t, user.ID.String(), center.AddedBy)
			},
		},
		{
			name: "missing required fields",
			request: map[string]interface{}{
				"name": "No Address",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.request)
			req, err := http.NewRequest(http.MethodPost, ts.URL("/api/centers"), bytes.NewBuffer(body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.checkResponse != nil {
				tt.checkResponse(t, resp)
			}
		})
	}
}
