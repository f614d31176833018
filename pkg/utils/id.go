package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 12
)

// GenerateID gera os identificadores dos lotes de alteração de status e das linhas de auditoria
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
