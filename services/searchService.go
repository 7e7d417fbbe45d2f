package services

import (
	"strings"

	"github.com/hineshmeraka/epharmacy-api/models"
	"gorm.io/gorm"
)

// Queries longer than this return no results instead of hitting the
// database.
const maxSearchQueryLen = 100

type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// likeEscaper neutralizes LIKE metacharacters so a query containing
// "%" or "_" still means the literal character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches products whose name contains the query
// (case-insensitive) or whose price, rendered as text, contains it as
// a literal substring. Both conditions run as a single predicate in
// one query. An empty query matches everything.
func (s *SearchService) Search(query string) ([]models.Product, error) {
	if len(query) > maxSearchQueryLen {
		return []models.Product{}, nil
	}

	nameLike := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	priceLike := "%" + likeEscaper.Replace(query) + "%"
	var products []models.Product
	err := s.db.
		Where("LOWER(name) LIKE ? ESCAPE '\\\\' OR CAST(price AS CHAR) LIKE ? ESCAPE '\\\\'", nameLike, priceLike).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
