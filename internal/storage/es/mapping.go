package es

import "github.com/elastic/go-elasticsearch/v8/typedapi/types"

// Preview lookups are by id only, so most fields are stored but not analysed.
func articleMapping() types.TypeMapping {
	notIndexed := false

	excerpt := types.NewTextProperty()
	excerpt.Index = &notIndexed
	content := types.NewTextProperty()
	content.Index = &notIndexed
	imageURL := types.NewKeywordProperty()
	imageURL.Index = &notIndexed

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"title":        titleProperty(),
			"subtitle":     types.NewTextProperty(),
			"excerpt":      excerpt,
			"content":      content,
			"category":     types.NewKeywordProperty(),
			"image_url":    imageURL,
			"published_at": types.NewDateProperty(),
			"created_at":   types.NewDateProperty(),
			"view_count":   types.NewLongNumberProperty(),
		},
	}
}

func titleProperty() types.Property {
	p := types.NewTextProperty()
	p.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}
	return p
}
