package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navicore/regexgen/pattern"
)

type PatternInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Regex string `json:"regex"`
}

type GetPatternsResponse struct {
	Patterns []PatternInfo `json:"patterns"`
}

// getPatterns returns the ordered pattern list. The array position is the
// handle delete and test take; ids are included so hosts can keep stable
// references of their own.
func (s *Service) getPatterns(ctx *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.builder.Patterns()

	patterns := make([]PatternInfo, 0, len(stored))
	for _, p := range stored {
		info := PatternInfo{
			ID:    p.GetID(),
			Name:  p.GetName(),
			Regex: pattern.Compile(p),
		}

		switch p.(type) {
		case pattern.Sequence:
			info.Type = "Sequence"
		case pattern.Composite:
			info.Type = "Composite"
		}

		patterns = append(patterns, info)
	}

	ctx.JSON(http.StatusOK, GetPatternsResponse{Patterns: patterns})
}
