package models

import "cinediscover/proj/internal/storage/postgres"

type Models struct {
	Movies    *MovieModel
	Favorites *FavoriteModel
}

func New(db *postgres.Storage) *Models {
	return &Models{
		Movies:    &MovieModel{db.Conn},
		Favorites: &FavoriteModel{db.Conn},
	}
}
