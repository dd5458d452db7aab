package graph

// Schema is installed before the ingestion loop starts. Every statement is
// IF NOT EXISTS so repeated startups are no-ops.
var schemaStatements = []string{
	`CREATE CONSTRAINT album_file_name IF NOT EXISTS FOR (a:Album)
	 REQUIRE a.file_name IS UNIQUE`,
	`CREATE CONSTRAINT artist_file_name IF NOT EXISTS FOR (a:Artist)
	 REQUIRE a.file_name IS UNIQUE`,
	`CREATE CONSTRAINT genre_name IF NOT EXISTS FOR (g:Genre)
	 REQUIRE g.name IS UNIQUE`,
	`CREATE CONSTRAINT descriptor_name IF NOT EXISTS FOR (d:Descriptor)
	 REQUIRE d.name IS UNIQUE`,
	`CREATE CONSTRAINT language_name IF NOT EXISTS FOR (l:Language)
	 REQUIRE l.name IS UNIQUE`,
	"CREATE INDEX album_name IF NOT EXISTS FOR (a:Album) ON (a.name)",
	"CREATE INDEX artist_name IF NOT EXISTS FOR (a:Artist) ON (a.name)",
	"CREATE INDEX credited_role IF NOT EXISTS FOR ()-[r:CREDITED]-() ON (r.role)",
	"CREATE INDEX genre_weight IF NOT EXISTS FOR ()-[r:GENRE]-() ON (r.weight)",
}

// Node merges. Display names are assigned ON CREATE only so the first writer
// wins and replays never overwrite.
const (
	MergeArtistsQuery = `
		UNWIND $artists AS artist
		MERGE (a:Artist {file_name: artist.file_name})
		ON CREATE SET a.name = artist.name
	`

	MergeGenresQuery = `
		UNWIND $genres AS genre
		MERGE (g:Genre {name: genre})
	`

	MergeDescriptorsQuery = `
		UNWIND $descriptors AS descriptor
		MERGE (d:Descriptor {name: descriptor})
	`

	MergeLanguagesQuery = `
		UNWIND $languages AS lang
		MERGE (l:Language {name: lang})
	`

	MergeAlbumsQuery = `
		UNWIND $albums AS album
		MERGE (a:Album {file_name: album.file_name})
		ON CREATE SET a.name = album.name
	`
)

// Relationship merges. Endpoints are MATCHed, never MERGEd, so an edge can
// only appear after both nodes exist.
const (
	MergeAlbumArtistsQuery = `
		UNWIND $album_artists AS album_artist
		MATCH (album:Album {file_name: album_artist.album_file_name})
		MATCH (artist:Artist {file_name: album_artist.artist_file_name})
		MERGE (artist)-[:ALBUM_ARTIST]->(album)
	`

	MergeCreditsQuery = `
		UNWIND $album_credits AS album_credit
		MATCH (album:Album {file_name: album_credit.album_file_name})
		MATCH (artist:Artist {file_name: album_credit.artist_file_name})
		MERGE (artist)-[:CREDITED {role: album_credit.role}]->(album)
	`

	MergePrimaryGenresQuery = `
		UNWIND $album_genres AS album_genre
		MATCH (album:Album {file_name: album_genre.album_file_name})
		MATCH (genre:Genre {name: album_genre.genre})
		MERGE (album)-[:GENRE {weight: 3}]->(genre)
	`

	MergeSecondaryGenresQuery = `
		UNWIND $album_genres AS album_genre
		MATCH (album:Album {file_name: album_genre.album_file_name})
		MATCH (genre:Genre {name: album_genre.genre})
		MERGE (album)-[:GENRE {weight: 1}]->(genre)
	`

	MergeAlbumDescriptorsQuery = `
		UNWIND $album_descriptors AS album_descriptor
		MATCH (album:Album {file_name: album_descriptor.album_file_name})
		MATCH (descriptor:Descriptor {name: album_descriptor.descriptor})
		MERGE (album)-[:DESCRIPTOR]->(descriptor)
	`

	MergeAlbumLanguagesQuery = `
		UNWIND $album_languages AS album_language
		MATCH (album:Album {file_name: album_language.album_file_name})
		MATCH (lang:Language {name: album_language.lang})
		MERGE (album)-[:LANGUAGE]->(lang)
	`
)

// Embedding pipeline.
const (
	ProjectGraphQuery = `
		CALL gds.graph.project($projection_id, $node_projection, $relationship_projection)
		YIELD graphName, nodeCount, relationshipCount
		RETURN graphName, nodeCount, relationshipCount
	`

	StreamFastRPQuery = `
		CALL gds.fastRP.stream($projection_id, {
			embeddingDimension: 512,
			randomSeed: 42,
			relationshipWeightProperty: 'weight'
		})
		YIELD nodeId, embedding
		WITH nodeId, embedding, gds.util.asNode(nodeId) AS node
		WHERE node:Album
		RETURN nodeId, node.file_name AS fileName, embedding
	`

	DropProjectionQuery = `CALL gds.graph.drop($projection_id, false)`
)
