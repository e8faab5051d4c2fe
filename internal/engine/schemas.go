package engine

import "github.com/santhosh-tekuri/jsonschema/v5"

const optionsSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["text", "impact"],
		"properties": {
			"id": {"type": "string"},
			"text": {"type": "string", "minLength": 1},
			"impact": {"enum": ["positive", "neutral", "negative"]}
		}
	}
}`

var (
	customersSchema = jsonschema.MustCompileString("customers.json", `{
		"type": "array",
		"minItems": 1,
		"items": {
			"type": "object",
			"required": ["name", "gender", "age", "job", "mbti", "appearance", "bio", "requirement", "mood", "drinkPreference", "drinkHint"],
			"properties": {
				"name": {"type": "string", "minLength": 1},
				"gender": {"enum": ["male", "female", "non-binary"]},
				"age": {"type": "integer", "minimum": 0},
				"job": {"type": "string"},
				"mbti": {"type": "string", "pattern": "^[EI][NS][TF][JP]$"},
				"appearance": {"type": "string"},
				"bio": {"type": "string"},
				"requirement": {"type": "string"},
				"mood": {"type": "string"},
				"drinkPreference": {"enum": ["strong", "sweet", "bitter", "sour", "refreshing", "spicy"]},
				"drinkHint": {"type": "string"}
			}
		}
	}`)

	matchSchema = jsonschema.MustCompileString("match.json", `{
		"type": "object",
		"required": ["score", "description", "success"],
		"properties": {
			"score": {"type": "integer"},
			"description": {"type": "string", "minLength": 1},
			"success": {"type": "boolean"}
		}
	}`)

	drinkSchema = jsonschema.MustCompileString("drink.json", `{
		"type": "object",
		"required": ["comment"],
		"properties": {"comment": {"type": "string", "minLength": 1}}
	}`)

	dialogueSchema = jsonschema.MustCompileString("dialogue.json", `{
		"type": "object",
		"required": ["text", "options"],
		"properties": {
			"text": {"type": "string", "minLength": 1},
			"options": `+optionsSchema+`
		}
	}`)

	enemySchema = jsonschema.MustCompileString("enemy.json", `{
		"type": "object",
		"required": ["name", "description"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"description": {"type": "string"}
		}
	}`)

	eventSchema = jsonschema.MustCompileString("event.json", `{
		"type": "object",
		"required": ["title", "description", "successText", "failText", "rewards"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"description": {"type": "string"},
			"statCheck": {
				"type": "object",
				"required": ["stat", "value"],
				"properties": {
					"stat": {"enum": ["logic", "wisdom", "charisma", "cultivation"]},
					"value": {"type": "integer"}
				}
			},
			"successText": {"type": "string"},
			"failText": {"type": "string"},
			"rewards": {
				"type": "object",
				"required": ["stat", "value"],
				"properties": {
					"stat": {"enum": ["logic", "wisdom", "charisma", "cultivation", "reputation"]},
					"value": {"type": "integer"}
				}
			}
		}
	}`)

	mailSchema = jsonschema.MustCompileString("mail.json", `{
		"type": "object",
		"required": ["subject", "content", "options"],
		"properties": {
			"senderName": {"type": "string"},
			"subject": {"type": "string", "minLength": 1},
			"content": {"type": "string", "minLength": 1},
			"options": `+optionsSchema+`
		}
	}`)
)
