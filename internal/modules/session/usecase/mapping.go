package usecase

import (
	"offlinewins/internal/modules/session/domain"
	sessiondto "offlinewins/internal/modules/session/dto"
)

func toActiveOutput(active domain.ActiveSession) sessiondto.ActiveSessionOutput {
	return sessiondto.ActiveSessionOutput{StartTime: active.StartTime, IsActive: active.IsActive}
}

func toOutput(session domain.Session) sessiondto.SessionOutput {
	out := sessiondto.SessionOutput{
		ID:              session.ID,
		Date:            session.Date,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		DurationMinutes: session.DurationMinutes,
		Activities:      append([]string{}, session.Activities...),
		CreatedAt:       session.CreatedAt,
		UpdatedAt:       session.UpdatedAt,
	}
	if session.CustomActivity != nil {
		out.CustomActivity = *session.CustomActivity
	}
	if session.MoodRating != nil {
		out.MoodRating = *session.MoodRating
	}
	if session.Notes != nil {
		out.Notes = *session.Notes
	}
	return out
}

// fromOutput rebuilds the untagged stub handed out by End.
func fromOutput(out sessiondto.SessionOutput) domain.Session {
	return domain.Session{
		ID:              out.ID,
		Date:            out.Date,
		StartTime:       out.StartTime,
		EndTime:         out.EndTime,
		DurationMinutes: out.DurationMinutes,
		Activities:      []string{},
		CreatedAt:       out.CreatedAt,
		UpdatedAt:       out.UpdatedAt,
	}
}

func toTags(tags sessiondto.Tags) domain.Tags {
	return domain.Tags{
		Activities:     tags.Activities,
		CustomActivity: tags.CustomActivity,
		MoodRating:     tags.MoodRating,
		Notes:          tags.Notes,
	}
}
