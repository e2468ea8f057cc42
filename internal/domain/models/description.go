package models

// RepoInfo identifica el repositorio remoto detectado desde la URL de origin.
type RepoInfo struct {
	Owner    string
	Name     string
	Provider string
}
