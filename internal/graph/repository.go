package graph

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/shedrachokonofua/lute-graph-connector/internal/logger"
	"github.com/shedrachokonofua/lute-graph-connector/internal/lutepb"
)

// AlbumUpdate is one parsed album pulled off the event stream.
type AlbumUpdate struct {
	FileName string
	Album    *lutepb.ParsedAlbum
}

// Repository applies album batches to the property graph.
type Repository struct {
	db Querier
}

func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// Setup installs constraints and indexes. Safe to run on every startup.
func (r *Repository) Setup(ctx context.Context) error {
	for _, statement := range schemaStatements {
		if _, err := r.db.ExecuteQuery(ctx, statement, nil); err != nil {
			return errors.Wrap(err, "failed to install graph schema")
		}
	}
	return nil
}

// batchParams holds the parameter rows for one UpdateGraph call, grouped by
// statement. Rows preserve first-seen order so replays produce identical
// statements.
type batchParams struct {
	artists          []map[string]interface{}
	genres           []string
	descriptors      []string
	languages        []string
	albums           []map[string]interface{}
	albumArtists     []map[string]interface{}
	credits          []map[string]interface{}
	primaryGenres    []map[string]interface{}
	secondaryGenres  []map[string]interface{}
	albumDescriptors []map[string]interface{}
	albumLanguages   []map[string]interface{}

	// Relationship contributions per album: artists + credits + genres +
	// descriptors + languages. Credits are counted once per credit entry,
	// not per role, matching the original connector's telemetry.
	relationshipCount int
}

func (b *batchParams) nodeCount() int {
	return len(b.artists) + len(b.genres) + len(b.descriptors) + len(b.languages) + len(b.albums)
}

func collectBatch(albums []AlbumUpdate) *batchParams {
	b := &batchParams{}

	artistNames := map[string]bool{}
	addArtist := func(artist *lutepb.AlbumArtist) {
		if artist == nil || artistNames[artist.FileName] {
			return
		}
		artistNames[artist.FileName] = true
		b.artists = append(b.artists, map[string]interface{}{
			"file_name": artist.FileName,
			"name":      artist.Name,
		})
	}

	genres := map[string]bool{}
	descriptors := map[string]bool{}
	languages := map[string]bool{}

	for _, update := range albums {
		album := update.Album

		for _, artist := range album.Artists {
			addArtist(artist)
			b.albumArtists = append(b.albumArtists, map[string]interface{}{
				"album_file_name":  update.FileName,
				"artist_file_name": artist.FileName,
			})
		}

		for _, credit := range album.Credits {
			artist := credit.GetArtist()
			if artist == nil {
				continue
			}
			addArtist(artist)
			for _, role := range credit.Roles {
				b.credits = append(b.credits, map[string]interface{}{
					"album_file_name":  update.FileName,
					"artist_file_name": artist.FileName,
					"role":             role,
				})
			}
		}

		for _, genre := range album.PrimaryGenres {
			if !genres[genre] {
				genres[genre] = true
				b.genres = append(b.genres, genre)
			}
			b.primaryGenres = append(b.primaryGenres, map[string]interface{}{
				"album_file_name": update.FileName,
				"genre":           genre,
			})
		}

		for _, genre := range album.SecondaryGenres {
			if !genres[genre] {
				genres[genre] = true
				b.genres = append(b.genres, genre)
			}
			b.secondaryGenres = append(b.secondaryGenres, map[string]interface{}{
				"album_file_name": update.FileName,
				"genre":           genre,
			})
		}

		for _, descriptor := range album.Descriptors {
			if !descriptors[descriptor] {
				descriptors[descriptor] = true
				b.descriptors = append(b.descriptors, descriptor)
			}
			b.albumDescriptors = append(b.albumDescriptors, map[string]interface{}{
				"album_file_name": update.FileName,
				"descriptor":      descriptor,
			})
		}

		for _, lang := range album.Languages {
			if !languages[lang] {
				languages[lang] = true
				b.languages = append(b.languages, lang)
			}
			b.albumLanguages = append(b.albumLanguages, map[string]interface{}{
				"album_file_name": update.FileName,
				"lang":            lang,
			})
		}

		b.albums = append(b.albums, map[string]interface{}{
			"file_name": update.FileName,
			"name":      album.Name,
		})

		b.relationshipCount += len(album.Artists) +
			len(album.Credits) +
			len(album.PrimaryGenres) +
			len(album.SecondaryGenres) +
			len(album.Descriptors) +
			len(album.Languages)
	}

	return b
}

// UpdateGraph applies one batch of parsed albums as idempotent MERGE
// statements. Node merges run before relationship merges so an edge never
// references an absent endpoint.
func (r *Repository) UpdateGraph(ctx context.Context, albums []AlbumUpdate) error {
	start := time.Now()

	logger.Logger.Infow("Building graph update", "album_count", len(albums))

	b := collectBatch(albums)

	statements := []struct {
		query  string
		params map[string]interface{}
	}{
		{MergeArtistsQuery, map[string]interface{}{"artists": b.artists}},
		{MergeGenresQuery, map[string]interface{}{"genres": b.genres}},
		{MergeDescriptorsQuery, map[string]interface{}{"descriptors": b.descriptors}},
		{MergeLanguagesQuery, map[string]interface{}{"languages": b.languages}},
		{MergeAlbumsQuery, map[string]interface{}{"albums": b.albums}},
		{MergeAlbumArtistsQuery, map[string]interface{}{"album_artists": b.albumArtists}},
		{MergeCreditsQuery, map[string]interface{}{"album_credits": b.credits}},
		{MergePrimaryGenresQuery, map[string]interface{}{"album_genres": b.primaryGenres}},
		{MergeSecondaryGenresQuery, map[string]interface{}{"album_genres": b.secondaryGenres}},
		{MergeAlbumDescriptorsQuery, map[string]interface{}{"album_descriptors": b.albumDescriptors}},
		{MergeAlbumLanguagesQuery, map[string]interface{}{"album_languages": b.albumLanguages}},
	}

	for _, statement := range statements {
		if _, err := r.db.ExecuteQuery(ctx, statement.query, statement.params); err != nil {
			return errors.Wrap(err, "failed to update graph")
		}
	}

	logger.Logger.Infow("Graph updated",
		"album_count", len(albums),
		"duration_sec", time.Since(start).Seconds(),
		"node_count", b.nodeCount(),
		"relationship_count", b.relationshipCount,
	)

	return nil
}
