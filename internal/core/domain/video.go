package domain

// VideoRecord is a single video in the knowledge base.
// Metadata fields default to their zero values when absent from the snapshot.
type VideoRecord struct {
	// ID is the YouTube video ID and the unique corpus key.
	ID string

	// Title is the raw, undecorated-by-us YouTube title.
	Title string

	// ChannelTitle is the uploading channel's display name.
	ChannelTitle string

	// Description is the video description.
	Description string

	// Tags are the uploader-supplied tags.
	Tags []string

	ViewCount    int64
	LikeCount    int64
	CommentCount int64

	// Override holds operator-curated metadata. Nil when absent.
	Override *CustomOverride

	// Insight holds creator analysis. Nil when absent.
	Insight *CreativeInsight
}

// DisplayTitle returns the manual title when one is set, else the raw title.
func (v *VideoRecord) DisplayTitle() string {
	if t := v.Override.Title(); t != "" {
		return t
	}
	return v.Title
}

// CreatorNames returns the creator names from the creative insight.
func (v *VideoRecord) CreatorNames() []string {
	return v.Insight.CreatorNames()
}

// CustomOverride is operator-entered metadata attached to a video.
// It exists to bridge speech-recognition output to stylised titles.
// All accessors are safe to call on a nil receiver.
type CustomOverride struct {
	ManualTitle            string
	ManualArtist           string
	JapanesePronunciations []string
	ArtistPronunciations   []string
	SearchKeywords         []string

	// LastEdited and EditCount are editor bookkeeping; scoring ignores them.
	LastEdited string
	EditCount  int
}

// Title returns the manual title.
func (o *CustomOverride) Title() string {
	if o == nil {
		return ""
	}
	return o.ManualTitle
}

// Artist returns the manual artist.
func (o *CustomOverride) Artist() string {
	if o == nil {
		return ""
	}
	return o.ManualArtist
}

// TitleReadings returns the katakana readings of the title.
func (o *CustomOverride) TitleReadings() []string {
	if o == nil {
		return nil
	}
	return o.JapanesePronunciations
}

// ArtistReadings returns the katakana readings of the artist.
func (o *CustomOverride) ArtistReadings() []string {
	if o == nil {
		return nil
	}
	return o.ArtistPronunciations
}

// Keywords returns the free-form search keywords.
func (o *CustomOverride) Keywords() []string {
	if o == nil {
		return nil
	}
	return o.SearchKeywords
}

// IsEmpty reports whether the override carries no searchable data.
func (o *CustomOverride) IsEmpty() bool {
	return o.Title() == "" && o.Artist() == "" &&
		len(o.TitleReadings()) == 0 && len(o.ArtistReadings()) == 0 && len(o.Keywords()) == 0
}

// CreativeInsight describes who made a video and what it is about.
type CreativeInsight struct {
	Creators []string
	Themes   []string
}

// CreatorNames returns the creator names, or nil for a nil receiver.
func (c *CreativeInsight) CreatorNames() []string {
	if c == nil {
		return nil
	}
	return c.Creators
}
