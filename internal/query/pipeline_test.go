package query_test

import (
	"testing"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() []*domain.CandidateProfile {
	return []*domain.CandidateProfile{
		{ID: "1", FullName: "Priya Sharma", CurrentTitle: "Senior Full Stack Developer", CurrentCompany: "Flipkart", ExperienceYears: 6, Location: "Bangalore, Karnataka", Skills: []string{"React", "Node.js", "MongoDB"}, MatchScore: 92, JobRequirementID: "j1"},
		{ID: "2", FullName: "Rohit Patel", CurrentTitle: "Frontend Lead", CurrentCompany: "Swiggy", ExperienceYears: 8, Location: "Mumbai, Maharashtra", Skills: []string{"Vue.js", "TypeScript"}, MatchScore: 87, JobRequirementID: "j1"},
		{ID: "3", FullName: "anita Reddy", CurrentTitle: "Backend Engineer", CurrentCompany: "Zomato", ExperienceYears: 4, Location: "Hyderabad, Telangana", Skills: []string{"Python", "Django"}, MatchScore: 84, JobRequirementID: "j2"},
		{ID: "4", FullName: "Vikash Kumar", CurrentTitle: "Software Engineer", CurrentCompany: "Paytm", ExperienceYears: 3, Location: "Bangalore, Karnataka", Skills: []string{"Java", "Spring Boot"}, MatchScore: 79, JobRequirementID: "j2"},
	}
}

func ids(list []*domain.CandidateProfile) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.CandidateFilter
		want   []string
	}{
		{"no filter", domain.CandidateFilter{}, []string{"1", "2", "3", "4"}},
		{"min score", domain.CandidateFilter{MinScore: 85}, []string{"1", "2"}},
		{"min score inclusive", domain.CandidateFilter{MinScore: 84}, []string{"1", "2", "3"}},
		{"open experience", domain.CandidateFilter{Experience: &domain.ExperienceRange{Min: 6}}, []string{"1", "2"}},
		{"closed experience inclusive", domain.CandidateFilter{Experience: &domain.ExperienceRange{Min: 3, Max: intPtr(4)}}, []string{"3", "4"}},
		{"location case insensitive", domain.CandidateFilter{Location: "bangalore"}, []string{"1", "4"}},
		{"skills substring", domain.CandidateFilter{Skills: []string{"react"}}, []string{"1"}},
		{"skills any of", domain.CandidateFilter{Skills: []string{"java", "vue"}}, []string{"2", "4"}},
		{"blank skills ignored", domain.CandidateFilter{Skills: []string{" "}}, []string{"1", "2", "3", "4"}},
		{"categories are ANDed", domain.CandidateFilter{MinScore: 80, Location: "Bangalore"}, []string{"1"}},
		{"nothing matches", domain.CandidateFilter{Skills: []string{"cobol"}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(query.Filter(fixtures(), tt.filter)))
		})
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		key  domain.CandidateSortKey
		want []string
	}{
		{domain.SortByMatchScore, []string{"1", "2", "3", "4"}},
		{domain.SortByExperience, []string{"2", "1", "3", "4"}},
		{domain.SortByName, []string{"3", "1", "2", "4"}},
		{"salary", []string{"4", "3", "2", "1"}},
		{"", []string{"4", "3", "2", "1"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			input := fixtures()
			// reverse so score order differs from input order
			input[0], input[1], input[2], input[3] = input[3], input[2], input[1], input[0]

			got := query.Sort(input, tt.key)
			assert.Equal(t, tt.want, ids(got))
			assert.Equal(t, "4", input[0].ID, "input must not be reordered")
		})
	}
}

func TestSortIsStable(t *testing.T) {
	input := []*domain.CandidateProfile{
		{ID: "a", MatchScore: 80},
		{ID: "b", MatchScore: 90},
		{ID: "c", MatchScore: 80},
	}
	assert.Equal(t, []string{"b", "a", "c"}, ids(query.Sort(input, domain.SortByMatchScore)))
}

func TestTop(t *testing.T) {
	input := fixtures()
	for i, score := range []int{95, 81, 99, 83} {
		input = append(input, &domain.CandidateProfile{ID: string(rune('a' + i)), MatchScore: score})
	}
	input = append(input, &domain.CandidateProfile{ID: "edge", MatchScore: 80})

	got := query.Top(input)
	assert.Equal(t, []string{"c", "a", "1", "2", "3"}, ids(got))
}

func TestAverageMatchScore(t *testing.T) {
	assert.Equal(t, 0, query.AverageMatchScore(nil))
	assert.Equal(t, 86, query.AverageMatchScore(fixtures()))
	assert.Equal(t, 80, query.AverageMatchScore([]*domain.CandidateProfile{{MatchScore: 79}, {MatchScore: 80}, {MatchScore: 81}}))
}

func TestSearch(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(query.Search(fixtures(), "  ")))
	assert.Equal(t, []string{"2"}, ids(query.Search(fixtures(), "SWIGGY")))
	assert.Equal(t, []string{"3"}, ids(query.Search(fixtures(), "django")))
	assert.Equal(t, []string{"3", "4"}, ids(query.Search(fixtures(), "engineer")))
}

func TestResult(t *testing.T) {
	res := query.Result(fixtures(), domain.CandidateQuery{
		JobRequirementID: "j1",
		Filter:           domain.CandidateFilter{MinScore: 85},
		SortBy:           domain.SortByName,
	})
	require.NotNil(t, res)
	assert.Equal(t, []string{"1", "2"}, ids(res.Candidates))
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 4, res.Total)
	assert.Equal(t, 90, res.AverageMatchScore)
}

func TestBand(t *testing.T) {
	assert.Equal(t, domain.BandHigh, query.Band(90))
	assert.Equal(t, domain.BandMedium, query.Band(89))
	assert.Equal(t, domain.BandMedium, query.Band(75))
	assert.Equal(t, domain.BandFair, query.Band(60))
	assert.Equal(t, domain.BandLow, query.Band(59))
}
