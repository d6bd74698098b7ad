package v1

import (
	"strconv"
	"strings"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// parseCandidateQuery reads the results-page filters from the query string.
// Skills may be comma separated, repeated, or both.
func parseCandidateQuery(c *gin.Context) (domain.CandidateQuery, error) {
	q := domain.CandidateQuery{
		JobRequirementID: strings.TrimSpace(c.Query("job_requirement_id")),
		SearchTerm:       c.Query("q"),
		SortBy:           domain.CandidateSortKey(c.Query("sort_by")),
	}

	if v := c.Query("min_score"); v != "" {
		score, err := strconv.Atoi(v)
		if err != nil || score < 0 || score > 100 {
			return q, apperror.BadRequest("min_score must be an integer between 0 and 100")
		}
		q.Filter.MinScore = score
	}

	if v := c.Query("experience"); v != "" {
		r, err := domain.ParseExperienceRange(v)
		if err != nil {
			return q, apperror.BadRequest("experience must look like 3-5 or 10+")
		}
		q.Filter.Experience = &r
	}

	q.Filter.Location = c.Query("location")
	q.Filter.Skills = splitList(c.QueryArray("skills"))

	return q, nil
}

func parseListParams(c *gin.Context) (domain.SortSpec, int, error) {
	sort := domain.ParseSortSpec(c.Query("sort"))

	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return sort, 0, apperror.BadRequest("limit must be a non-negative integer")
		}
		limit = n
	}
	return sort, limit, nil
}

func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
