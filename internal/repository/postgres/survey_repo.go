package postgres

import (
	"context"

	"confcompanion/internal/domain"
)

const surveyColumns = `id, user_id, conference_id, survey_type, responses, submitted_at, completed`

func (s *Storage) ListSurveyResponses(ctx context.Context, userID string) ([]*domain.SurveyResponse, error) {
	query := `SELECT ` + surveyColumns + ` FROM survey_responses WHERE user_id = $1 ORDER BY submitted_at`
	return run(ctx, s, "list survey responses", func(ctx context.Context) ([]*domain.SurveyResponse, error) {
		out := []*domain.SurveyResponse{}
		if err := s.db.SelectContext(ctx, &out, query, userID); err != nil {
			return nil, err
		}
		return out, nil
	})
}

// SubmitSurvey always inserts a new row.
func (s *Storage) SubmitSurvey(ctx context.Context, resp *domain.SurveyResponse) error {
	responses := string(resp.Responses)
	if responses == "" {
		responses = "{}"
	}
	query := `
		INSERT INTO survey_responses (user_id, conference_id, survey_type, responses, completed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, submitted_at
	`
	return exec(ctx, s, "submit survey", func(ctx context.Context) error {
		return s.db.QueryRowxContext(ctx, query,
			resp.UserID, resp.ConferenceID, resp.SurveyType, responses, resp.Completed,
		).Scan(&resp.ID, &resp.Timestamp)
	})
}

// GetSurveyResponse returns the first stored response of surveyType.
func (s *Storage) GetSurveyResponse(ctx context.Context, userID, surveyType string) (*domain.SurveyResponse, error) {
	query := `SELECT ` + surveyColumns + ` FROM survey_responses WHERE user_id = $1 AND survey_type = $2 ORDER BY submitted_at LIMIT 1`
	return run(ctx, s, "get survey response", func(ctx context.Context) (*domain.SurveyResponse, error) {
		out := &domain.SurveyResponse{}
		if err := s.db.GetContext(ctx, out, query, userID, surveyType); err != nil {
			return nil, notFound(err)
		}
		return out, nil
	})
}
