package driver

var IndexQueries = []string{
	"CREATE INDEX ON :Disease(id);",
	"CREATE INDEX ON :Target(id);",
	"CREATE INDEX ON :Pathway(id);",
}

const (
	SaveDiseaseQuery = `
		MERGE (d:Disease {id: $id})
		SET d.name = $name,
			d.category = $category,
			d.description = $description
		RETURN d.id AS id
	`

	SaveTargetQuery = `
		MERGE (t:Target {id: $id})
		SET t.name = $name,
			t.type = $type,
			t.description = $description
		RETURN t.id AS id
	`

	SavePathwayQuery = `
		MERGE (p:Pathway {id: $id})
		SET p.name = $name,
			p.description = $description
		RETURN p.id AS id
	`

	GetDiseasesQuery = `
		MATCH (d:Disease)
		RETURN d.id AS id, d.name AS name, d.category AS category, d.description AS description
		ORDER BY d.name
	`

	GetTargetsQuery = `
		MATCH (t:Target)
		RETURN t.id AS id, t.name AS name, t.type AS type, t.description AS description
		ORDER BY t.id
	`

	GetPathwaysQuery = `
		MATCH (p:Pathway)
		RETURN p.id AS id, p.name AS name, p.description AS description
		ORDER BY p.id
	`
)
