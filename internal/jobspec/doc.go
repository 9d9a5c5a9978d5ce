// Package jobspec defines the in-memory model of an import job
// specification and loads it from YAML or JSON documents.
//
// A job specification describes how rows from data sources are written
// into a graph: node targets, relationship (edge) targets and custom
// query targets, each fed from a source through field mappings, plus
// side-effect actions.
//
// # Schema Overview
//
//	version: "1"
//	sources:
//	  - name: people
//	    type: bigquery
//	    query: SELECT id, name, age FROM dataset.people
//	targets:
//	  - name: Person
//	    type: node
//	    source: people
//	    mappings:
//	      - {name: Person, constant: Person, role: label}
//	      - {name: id, field: id, role: key, type: Integer}
//	      - {name: name, field: name}
//	  - name: Knows
//	    type: edge
//	    source: people
//	    save_mode: merge
//	    edge_nodes_match_mode: match
//	    mappings:
//	      - {name: KNOWS, constant: KNOWS, fragment: rel, role: type}
//	      - {name: id, field: id, fragment: source, role: key}
//	      - {name: friend_id, field: friend_id, fragment: target, role: key}
//	actions:
//	  - name: index
//	    type: cypher
//	    options:
//	      cypher: CREATE INDEX IF NOT EXISTS FOR (p:Person) ON (p.name)
//
// # Defaults
//
// Parse fills in what a document may leave out: a mapping role defaults
// to property, a mapping fragment defaults to node on node targets and to
// rel on edge targets, save mode defaults to append and the edge-node
// match mode defaults to match. A target without an active flag is active.
//
// Since YAML is a superset of JSON, JSON job specifications load through
// the same path.
package jobspec
