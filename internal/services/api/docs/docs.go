// Package docs holds the OpenAPI document served by swaggerkit.
// Regenerate with: swag init -v3.1 -g cmd/portfolio-api/main.go -o internal/services/api/docs --instanceName api
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.1.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/meta/health": {
            "get": {
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.HealthResponse"}}}}}
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["Meta"],
                "summary": "Readiness probe with upstream checks",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ReadyResponse"}}}}}
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/version.BuildInfo"}}}}}
            }
        },
        "/meta/service": {
            "get": {
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.ServiceResponse"}}}}}
            }
        },
        "/meta/cache": {
            "get": {
                "tags": ["Meta"],
                "summary": "Response cache entries",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/http.CacheResponse"}}}}}
            }
        },
        "/github/profile": {
            "get": {
                "tags": ["GitHub"],
                "summary": "Account profile",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/portfolio.Profile"}}}}}
            }
        },
        "/github/repos": {
            "post": {
                "tags": ["GitHub"],
                "summary": "Owned repositories, most recently updated first",
                "requestBody": {"required": false, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ReposInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/portfolio.Repository"}}}}}}
            }
        },
        "/github/repos/top": {
            "post": {
                "tags": ["GitHub"],
                "summary": "Curated display selection of repositories",
                "requestBody": {"required": false, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.TopReposInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/portfolio.Repository"}}}}}}
            }
        },
        "/github/repos/all": {
            "get": {
                "tags": ["GitHub"],
                "summary": "Every owned repository, Python first",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/portfolio.Repository"}}}}}}
            }
        },
        "/github/contributions": {
            "post": {
                "tags": ["GitHub"],
                "summary": "Contribution stats over a trailing window",
                "requestBody": {"required": false, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.ContributionsInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/portfolio.ContributionStats"}}}}}
            }
        },
        "/github/contributions/recent": {
            "get": {
                "tags": ["GitHub"],
                "summary": "Contribution stats over the last three months",
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/portfolio.ContributionStats"}}}}}
            }
        },
        "/github/portfolio": {
            "post": {
                "tags": ["GitHub"],
                "summary": "Processed portfolio view with skills and experience",
                "requestBody": {"required": false, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/domain.PortfolioInput"}}}},
                "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/portfolio.Processed"}}}}}
            }
        }
    },
    "components": {
        "schemas": {
            "domain.ReposInput": {
                "type": "object",
                "properties": {"include_details": {"type": "boolean", "example": true}}
            },
            "domain.TopReposInput": {
                "type": "object",
                "properties": {"limit": {"type": "integer", "minimum": 1, "maximum": 100, "example": 8}}
            },
            "domain.ContributionsInput": {
                "type": "object",
                "properties": {"months": {"type": "integer", "minimum": 1, "maximum": 24, "example": 12}}
            },
            "domain.PortfolioInput": {
                "type": "object",
                "properties": {"months": {"type": "integer", "minimum": 1, "maximum": 24, "example": 3}}
            },
            "portfolio.Repository": {
                "type": "object",
                "properties": {
                    "name": {"type": "string", "example": "portfolio"},
                    "description": {"type": "string"},
                    "url": {"type": "string"},
                    "stars": {"type": "integer"},
                    "forks": {"type": "integer"},
                    "language": {"type": "string", "example": "Go"},
                    "topics": {"type": "array", "items": {"type": "string"}},
                    "updated_at": {"type": "string", "format": "date-time"},
                    "created_at": {"type": "string", "format": "date-time"},
                    "is_fork": {"type": "boolean"},
                    "open_issues": {"type": "integer"},
                    "watchers": {"type": "integer"},
                    "default_branch": {"type": "string", "example": "main"}
                }
            },
            "portfolio.Profile": {
                "type": "object",
                "properties": {
                    "login": {"type": "string", "example": "octocat"},
                    "id": {"type": "integer"},
                    "avatar_url": {"type": "string"},
                    "html_url": {"type": "string"},
                    "name": {"type": "string"},
                    "company": {"type": "string"},
                    "blog": {"type": "string"},
                    "location": {"type": "string"},
                    "email": {"type": "string", "nullable": true},
                    "bio": {"type": "string"},
                    "public_repos": {"type": "integer"},
                    "public_gists": {"type": "integer"},
                    "followers": {"type": "integer"},
                    "following": {"type": "integer"},
                    "created_at": {"type": "string", "format": "date-time"},
                    "updated_at": {"type": "string", "format": "date-time"}
                }
            },
            "portfolio.ContributionDay": {
                "type": "object",
                "properties": {"date": {"type": "string", "example": "2025-06-15"}, "count": {"type": "integer"}, "level": {"type": "integer", "minimum": 0, "maximum": 4}}
            },
            "portfolio.Share": {
                "type": "object",
                "properties": {"count": {"type": "integer"}, "percentage": {"type": "integer"}}
            },
            "portfolio.ActivityBreakdown": {
                "type": "object",
                "properties": {
                    "commits": {"$ref": "#/components/schemas/portfolio.Share"},
                    "pull_requests": {"$ref": "#/components/schemas/portfolio.Share"},
                    "issues": {"$ref": "#/components/schemas/portfolio.Share"},
                    "code_reviews": {"$ref": "#/components/schemas/portfolio.Share"}
                }
            },
            "portfolio.MonthlyContribution": {
                "type": "object",
                "properties": {"month": {"type": "string", "example": "Jun"}, "year": {"type": "string", "example": "2025"}, "count": {"type": "integer"}}
            },
            "portfolio.RepoSummary": {
                "type": "object",
                "properties": {
                    "name": {"type": "string"},
                    "url": {"type": "string"},
                    "stars": {"type": "integer"},
                    "language": {"type": "string"}
                }
            },
            "portfolio.ContributionStats": {
                "type": "object",
                "properties": {
                    "total_contributions": {"type": "integer"},
                    "activity_breakdown": {"$ref": "#/components/schemas/portfolio.ActivityBreakdown"},
                    "contribution_calendar": {"type": "array", "items": {"$ref": "#/components/schemas/portfolio.ContributionDay"}},
                    "contributed_repositories": {"type": "array", "items": {"$ref": "#/components/schemas/portfolio.RepoSummary"}},
                    "monthly_contributions": {"type": "array", "items": {"$ref": "#/components/schemas/portfolio.MonthlyContribution"}}
                }
            },
            "portfolio.Skill": {
                "type": "object",
                "properties": {"name": {"type": "string", "example": "python"}, "level": {"type": "integer", "example": 100}}
            },
            "portfolio.Experience": {
                "type": "object",
                "properties": {
                    "top_languages": {"type": "array", "items": {"type": "string"}},
                    "years_active": {"type": "number", "example": 7.2},
                    "contribution_streak": {"type": "integer"},
                    "recommendations": {"type": "array", "items": {"type": "string"}}
                }
            },
            "portfolio.Processed": {
                "type": "object",
                "properties": {
                    "skills": {"type": "array", "items": {"$ref": "#/components/schemas/portfolio.Skill"}},
                    "profile": {"type": "object"},
                    "experience": {"$ref": "#/components/schemas/portfolio.Experience"},
                    "repositories": {"type": "object"},
                    "contributions": {"type": "object"}
                }
            },
            "version.BuildInfo": {
                "type": "object",
                "properties": {
                    "service": {"type": "string"},
                    "version": {"type": "string"},
                    "commit": {"type": "string"},
                    "date": {"type": "string"},
                    "go_version": {"type": "string"}
                }
            },
            "http.HealthResponse": {
                "type": "object",
                "properties": {"ok": {"type": "boolean"}, "service": {"type": "string"}, "started": {"type": "string"}, "now": {"type": "string"}}
            },
            "http.ReadyCheck": {
                "type": "object",
                "properties": {"name": {"type": "string"}, "status": {"type": "string"}, "error": {"type": "string"}}
            },
            "http.ReadyResponse": {
                "type": "object",
                "properties": {
                    "status": {"type": "string"},
                    "checks": {"type": "array", "items": {"$ref": "#/components/schemas/http.ReadyCheck"}},
                    "now": {"type": "string"}
                }
            },
            "http.ServiceResponse": {
                "type": "object",
                "properties": {"name": {"type": "string"}, "instance": {"type": "string"}, "started": {"type": "string"}, "uptime": {"type": "integer"}}
            },
            "http.CacheResponse": {
                "type": "object",
                "properties": {"entries": {"type": "integer"}, "keys": {"type": "array", "items": {"type": "string"}}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "Portfolio API",
	Description:      "GitHub profile, repository and contribution data for a personal portfolio",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
