package snapshot

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// Decode parses a whole snapshot document. Per-video problems are reported
// in the snapshot's LoadReport; an error means the document itself is unusable.
func Decode(data []byte, source string) (*domain.Snapshot, error) {
	if !isObject(data) {
		return nil, fmt.Errorf("%w: %s: top level is not an object", domain.ErrMalformedSnapshot, source)
	}
	var doc wireDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrMalformedSnapshot, source, err)
	}

	ids := make([]string, 0, len(doc.Videos))
	for id := range doc.Videos {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	b := NewBuilder(source)
	for _, id := range ids {
		raw := doc.Videos[id]
		if !isObject(raw) {
			b.Skip(id, "video is not an object")
			continue
		}
		var v wireVideo
		if err := json.Unmarshal(raw, &v); err != nil {
			b.Skip(id, err.Error())
			continue
		}
		b.Add(id, Sections{
			Metadata:        v.Metadata,
			CreativeInsight: v.CreativeInsight,
			CustomInfo:      v.CustomInfo,
		})
	}
	return b.Snapshot(), nil
}

// Encode renders records as a snapshot document.
func Encode(records []domain.VideoRecord) ([]byte, error) {
	doc := struct {
		Videos map[string]wireVideo `json:"videos"`
	}{Videos: make(map[string]wireVideo, len(records))}

	for _, rec := range records {
		s, err := EncodeSections(rec)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", rec.ID, err)
		}
		doc.Videos[rec.ID] = wireVideo{
			Metadata:        s.Metadata,
			CreativeInsight: s.CreativeInsight,
			CustomInfo:      s.CustomInfo,
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// EncodeSections renders one record's sections. Absent sections are nil.
func EncodeSections(rec domain.VideoRecord) (Sections, error) {
	var s Sections
	var err error

	s.Metadata, err = json.Marshal(wireMetadata{
		Title:        rec.Title,
		ChannelTitle: rec.ChannelTitle,
		Description:  rec.Description,
		Tags:         rec.Tags,
		ViewCount:    flexCount(rec.ViewCount),
		LikeCount:    flexCount(rec.LikeCount),
		CommentCount: flexCount(rec.CommentCount),
	})
	if err != nil {
		return s, err
	}

	if rec.Insight != nil {
		insight := wireInsight{Themes: rec.Insight.Themes}
		for _, name := range rec.Insight.Creators {
			insight.Creators = append(insight.Creators, wireCreator{Name: name})
		}
		if s.CreativeInsight, err = json.Marshal(insight); err != nil {
			return s, err
		}
	}

	if o := rec.Override; o != nil {
		s.CustomInfo, err = json.Marshal(wireCustomInfo{
			ManualTitle:            o.ManualTitle,
			ManualArtist:           o.ManualArtist,
			JapanesePronunciations: o.JapanesePronunciations,
			ArtistPronunciations:   o.ArtistPronunciations,
			SearchKeywords:         o.SearchKeywords,
			LastEdited:             o.LastEdited,
			EditCount:              o.EditCount,
		})
		if err != nil {
			return s, err
		}
	}
	return s, nil
}
