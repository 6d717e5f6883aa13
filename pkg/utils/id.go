package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para marcar o dump de dados
// enriquecidos de cada execução
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
