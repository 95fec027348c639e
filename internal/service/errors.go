package service

import "fmt"

// ValidationError entrée manquante ou hors bornes, rattachée à un champ.
// Le Handler la traduit en 400 avec le message tel quel ; aucune écriture
// partielle n'a lieu, la validation court-circuite avant tout accès au
// stockage.
type ValidationError struct {
	Champ   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Champ, e.Message)
}

func validationErr(champ, message string) error {
	return &ValidationError{Champ: champ, Message: message}
}
