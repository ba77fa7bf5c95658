package repository

import "context"

// ReviewedPlacesRepository определяет доступ к уже просмотренным местам пользователя
type ReviewedPlacesRepository interface {
	// GetSavedAndDismissed возвращает множества идентификаторов сохранённых
	// и отклонённых мест пользователя
	GetSavedAndDismissed(ctx context.Context, userID string) (saved, dismissed map[string]struct{}, err error)
}
