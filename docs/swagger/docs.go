// Package swagger registers the OpenAPI document built from the handler
// annotations and served at /swagger.
//
// Regenerate after changing an annotation with:
//
//	swag init -g cmd/start.go -o docs/swagger
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "description": "HandleLogin exchanges credentials for a token.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Admin Login",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admins.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/admins.LoginResult"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/auth/reset-password": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleResetPassword sets a new password for an account.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Reset Admin Password",
                "parameters": [
                    {
                        "description": "Reset",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admins.ResetPasswordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/footer": {
            "get": {
                "description": "HandlePublicFooter returns everything the footer renders.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "Get Footer",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/footer.PublicFooter"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/contact-info": {
            "get": {
                "description": "HandlePublicContactInfo returns the active contact channels.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "List Contact Info",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/footer.ContactInfo"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/social-links": {
            "get": {
                "description": "HandlePublicSocialLinks returns the active social links.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "List Social Links",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/footer.SocialLink"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/admin/footer": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGetSections returns every footer column, hidden ones included.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "Get Footer Sections",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/footer.Section"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdateSections replaces the footer columns and their links.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "Replace Footer",
                "parameters": [
                    {
                        "description": "Footer sections",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/footer.SectionsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/footer.Section"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/contact-info": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGetContactInfo returns every contact channel.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "Get Contact Info",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/footer.ContactInfo"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdateContactInfo replaces the contact channels.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "Replace Contact Info",
                "parameters": [
                    {
                        "description": "Contact info",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/footer.ContactInfoRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/footer.ContactInfo"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/social-links": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGetSocialLinks returns every social link.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "Get Social Links",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/footer.SocialLink"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdateSocialLinks replaces the social links.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "footer"
                ],
                "summary": "Replace Social Links",
                "parameters": [
                    {
                        "description": "Social links",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/footer.SocialLinksRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/footer.SocialLink"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "HandleHealth reports service health. A failed database probe answers 503.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/health.Status"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/health.Status"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/hero": {
            "get": {
                "description": "HandleGetPublic returns the hero dashboards and content.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hero"
                ],
                "summary": "Get Hero",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/hero.PublicHero"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/admin/hero-dashboards": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdateDashboards replaces the hero dashboards.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hero"
                ],
                "summary": "Replace Hero Dashboards",
                "parameters": [
                    {
                        "description": "Dashboards",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/hero.DashboardsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/hero.Dashboard"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/hero-content": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGetContent returns the stored hero content.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hero"
                ],
                "summary": "Get Hero Content",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/hero.Content"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdateContent saves the hero copy.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "hero"
                ],
                "summary": "Update Hero Content",
                "parameters": [
                    {
                        "description": "Hero content",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/hero.ContentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/hero.Content"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/consultation": {
            "post": {
                "description": "HandleConsultation stores a consultation request.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Request Consultation",
                "parameters": [
                    {
                        "description": "Consultation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/leads.ConsultationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/leads.Receipt"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/contact": {
            "post": {
                "description": "HandleContact stores a contact-form message.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Submit Contact Form",
                "parameters": [
                    {
                        "description": "Contact",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/leads.ContactRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/leads.Receipt"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/consultation-form": {
            "get": {
                "description": "HandleGetForm returns the consultation form configuration.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Get Consultation Form",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/leads.FormConfig"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/admin/consultation-form": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdateForm saves the consultation form configuration.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Update Consultation Form",
                "parameters": [
                    {
                        "description": "Form",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/leads.FormRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/leads.FormConfig"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/leads": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleList returns leads, optionally filtered by type and status.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "List Leads",
                "parameters": [
                    {
                        "type": "string",
                        "description": "consultation or contact",
                        "name": "type",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "new, in_progress or closed",
                        "name": "status",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/leads.Lead"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/admin/leads/{id}/status": {
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdateStatus moves a lead to a new status.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Update Lead Status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Lead ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Status",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/leads.StatusRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/leads/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleDelete removes a lead.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "leads"
                ],
                "summary": "Delete Lead",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Lead ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/navigation": {
            "get": {
                "description": "HandleGetPublic returns the menu, dropdowns and theme.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "navigation"
                ],
                "summary": "Get Navigation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/navigation.PublicNavigation"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/navigation/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGet returns one nav item with its dropdown.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "navigation"
                ],
                "summary": "Get Navigation Item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Nav item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/navigation.NavItem"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleDelete removes a nav item and its dropdown.",
                "tags": [
                    "navigation"
                ],
                "summary": "Delete Navigation Item",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Nav item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/navigation": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Upserts nav items by key and rewrites the dropdowns in the payload. Nav items not in the payload are kept.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "navigation"
                ],
                "summary": "Update Navigation",
                "parameters": [
                    {
                        "description": "Navigation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/navigation.UpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/page-content/{pageKey}": {
            "get": {
                "description": "HandlePublicContent returns the content of an active page.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pages"
                ],
                "summary": "Get Page Content",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Page key",
                        "name": "pageKey",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/pages.Content"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/call-to-actions/{pageKey}": {
            "get": {
                "description": "HandlePublicCallToActions returns the active banners of a page.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pages"
                ],
                "summary": "List Call-to-Actions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Page key",
                        "name": "pageKey",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/pages.CallToAction"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/admin/page-content/{pageKey}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGetContent returns the content of a page whether or not it is active.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pages"
                ],
                "summary": "Get Page Content (admin)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Page key",
                        "name": "pageKey",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/pages.Content"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/page-content": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdateContent upserts a page by its key.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pages"
                ],
                "summary": "Update Page Content",
                "parameters": [
                    {
                        "description": "Page content",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pages.ContentRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/pages.Content"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/call-to-actions/{pageKey}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGetCallToActions returns every banner of a page.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pages"
                ],
                "summary": "List Call-to-Actions (admin)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Page key",
                        "name": "pageKey",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/pages.CallToAction"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The body is the complete list for the page; an empty list removes every banner.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pages"
                ],
                "summary": "Replace Page Call-to-Actions",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Page key",
                        "name": "pageKey",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Call-to-actions",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pages.PageCallToActionsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/pages.CallToAction"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/call-to-actions": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Each page key present in the payload has its banners replaced; other pages are untouched.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "pages"
                ],
                "summary": "Replace Call-to-Actions",
                "parameters": [
                    {
                        "description": "Call-to-actions",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/pages.CallToActionsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/pages.CallToAction"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/section-content/{sectionKey}": {
            "get": {
                "description": "HandleGet returns one active section.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sections"
                ],
                "summary": "Get Section Content",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Section key",
                        "name": "sectionKey",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/sections.Content"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/section-content": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleList returns every section for the admin editor.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sections"
                ],
                "summary": "List Section Content",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/sections.Content"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdate upserts a section by its key.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sections"
                ],
                "summary": "Update Section Content",
                "parameters": [
                    {
                        "description": "Section",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/sections.UpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/sections.Content"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/services": {
            "get": {
                "description": "HandleList returns active services.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "services"
                ],
                "summary": "List Services",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Category",
                        "name": "category",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "description": "Featured only",
                        "name": "featured",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "description": "Popular only",
                        "name": "popular",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "description": "Offered on the quote form",
                        "name": "onQuote",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/services.Offering"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/services/quote-options": {
            "get": {
                "description": "HandleQuoteOptions lists services selectable on the quote form.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "services"
                ],
                "summary": "List Quote Options",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/services.QuoteOption"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/services/categories": {
            "get": {
                "description": "HandleCategories lists the distinct service categories.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "services"
                ],
                "summary": "List Service Categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "type": "string"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/services/{slug}": {
            "get": {
                "description": "HandleGetBySlug returns one service.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "services"
                ],
                "summary": "Get Service",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Service slug",
                        "name": "slug",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/services.Offering"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/services": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleListAll returns every service for the admin editor.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "services"
                ],
                "summary": "List All Services",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/services.Offering"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdate replaces the service catalogue.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "services"
                ],
                "summary": "Replace Services",
                "parameters": [
                    {
                        "description": "Services",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/services.UpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/services.Offering"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/services/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleDelete removes a service.",
                "tags": [
                    "services"
                ],
                "summary": "Delete Service",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Service ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/stats": {
            "get": {
                "description": "HandleList returns the active stats.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stats"
                ],
                "summary": "List Stats",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/stats.Stat"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/stats": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Deletes all stats and recreates them from the payload. Ids change on every save.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stats"
                ],
                "summary": "Replace Stats",
                "parameters": [
                    {
                        "description": "Stats",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/stats.UpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/stats.Stat"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/stats/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleDelete removes a stat.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "stats"
                ],
                "summary": "Delete Stat",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Stat ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/testimonials": {
            "get": {
                "description": "HandleList returns active testimonials.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "testimonials"
                ],
                "summary": "List Testimonials",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Service name",
                        "name": "service",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "boolean",
                        "description": "Featured only",
                        "name": "featured",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Minimum rating",
                        "name": "rating",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of results",
                        "name": "limit",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/testimonials.Testimonial"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/admin/testimonials": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Updates testimonials whose id is known, creates the rest and deletes any not in the list.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "testimonials"
                ],
                "summary": "Reconcile Testimonials",
                "parameters": [
                    {
                        "description": "Testimonials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/testimonials.UpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/reconcile.Counts"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/testimonials/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleDelete removes a testimonial.",
                "tags": [
                    "testimonials"
                ],
                "summary": "Delete Testimonial",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Testimonial ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/theme": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGet returns the stored theme.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "theme"
                ],
                "summary": "Get Theme",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/theme.Config"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpdate saves the theme colors and branding.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "theme"
                ],
                "summary": "Update Theme",
                "parameters": [
                    {
                        "description": "Theme",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/theme.UpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/theme.Config"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/upload": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleUpload stores a file sent as multipart field \"file\".",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uploads"
                ],
                "summary": "Upload File",
                "parameters": [
                    {
                        "type": "file",
                        "description": "File",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/uploads.File"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/admin/uploads": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleList returns uploaded files.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uploads"
                ],
                "summary": "List Uploads",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Uploader admin ID",
                        "name": "uploadedBy",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "image, video, document, other or all",
                        "name": "fileType",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "string",
                        "description": "Original name contains",
                        "name": "search",
                        "in": "query",
                        "required": false
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/uploads.File"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/admin/uploads/stats": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleStats returns file counts and total size.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uploads"
                ],
                "summary": "Upload Stats",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/uploads.Stats"
                                        }
                                    }
                                }
                            ]
                        }
                    }
                }
            }
        },
        "/admin/uploads/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "HandleGet returns one file's metadata.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uploads"
                ],
                "summary": "Get Upload",
                "parameters": [
                    {
                        "type": "string",
                        "description": "File ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/response.Envelope"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/uploads.File"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Removes the metadata row; the stored bytes are removed best effort.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uploads"
                ],
                "summary": "Delete Upload",
                "parameters": [
                    {
                        "type": "string",
                        "description": "File ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        },
        "/uploads/{filename}": {
            "get": {
                "description": "HandleServe streams a stored file.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "uploads"
                ],
                "summary": "Serve Upload",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Generated filename",
                        "name": "filename",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.Envelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "admins.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "admins.LoginResult": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "expiresAt": {
                    "type": "string"
                },
                "admin": {
                    "$ref": "#/definitions/admins.Profile"
                }
            }
        },
        "admins.Profile": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                }
            }
        },
        "admins.ResetPasswordRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "newPassword": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "newPassword"
            ]
        },
        "footer.ContactInfo": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "footer.ContactInfoInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            },
            "required": [
                "type",
                "label",
                "value"
            ]
        },
        "footer.ContactInfoRequest": {
            "type": "object",
            "properties": {
                "contactInfo": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/footer.ContactInfoInput"
                    }
                }
            },
            "required": [
                "contactInfo"
            ]
        },
        "footer.Link": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "footerSectionId": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "footer.LinkInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            },
            "required": [
                "name",
                "href"
            ]
        },
        "footer.PublicFooter": {
            "type": "object",
            "properties": {
                "sections": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/footer.Section"
                    }
                },
                "contactInfo": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/footer.ContactInfo"
                    }
                },
                "socialLinks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/footer.SocialLink"
                    }
                }
            }
        },
        "footer.Section": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                },
                "links": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/footer.Link"
                    }
                }
            }
        },
        "footer.SectionInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                },
                "links": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/footer.LinkInput"
                    }
                }
            },
            "required": [
                "title"
            ]
        },
        "footer.SectionsRequest": {
            "type": "object",
            "properties": {
                "sections": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/footer.SectionInput"
                    }
                }
            },
            "required": [
                "sections"
            ]
        },
        "footer.SocialLink": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "footer.SocialLinkInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            },
            "required": [
                "name",
                "icon",
                "href"
            ]
        },
        "footer.SocialLinksRequest": {
            "type": "object",
            "properties": {
                "socialLinks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/footer.SocialLinkInput"
                    }
                }
            },
            "required": [
                "socialLinks"
            ]
        },
        "health.Status": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "database": {
                    "type": "string"
                }
            }
        },
        "hero.Content": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "trustBadge": {
                    "type": "string"
                },
                "mainHeading": {
                    "type": "string"
                },
                "subHeading": {
                    "type": "string"
                },
                "tagline": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "trustPoints": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "primaryCtaText": {
                    "type": "string"
                },
                "secondaryCtaText": {
                    "type": "string"
                },
                "phoneNumber": {
                    "type": "string"
                },
                "chatWidgetUrl": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "hero.ContentRequest": {
            "type": "object",
            "properties": {
                "trustBadge": {
                    "type": "string"
                },
                "mainHeading": {
                    "type": "string"
                },
                "subHeading": {
                    "type": "string"
                },
                "tagline": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "trustPoints": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "primaryCtaText": {
                    "type": "string"
                },
                "secondaryCtaText": {
                    "type": "string"
                },
                "phoneNumber": {
                    "type": "string"
                },
                "chatWidgetUrl": {
                    "type": "string"
                }
            }
        },
        "hero.Dashboard": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "stats": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/hero.DashboardStat"
                    }
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "imageUrl": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "hero.DashboardInput": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "stats": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/hero.DashboardStat"
                    }
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "imageUrl": {
                    "type": "string"
                }
            },
            "required": [
                "title",
                "description",
                "stats",
                "features"
            ]
        },
        "hero.DashboardStat": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            },
            "required": [
                "label",
                "value",
                "color"
            ]
        },
        "hero.DashboardsRequest": {
            "type": "object",
            "properties": {
                "dashboards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/hero.DashboardInput"
                    }
                }
            },
            "required": [
                "dashboards"
            ]
        },
        "hero.PublicHero": {
            "type": "object",
            "properties": {
                "heroDashboards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/hero.Dashboard"
                    }
                },
                "heroContent": {
                    "$ref": "#/definitions/hero.Content"
                }
            }
        },
        "leads.ConsultationRequest": {
            "type": "object",
            "properties": {
                "fullName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "service": {
                    "type": "string"
                },
                "details": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                }
            },
            "required": [
                "fullName",
                "email"
            ]
        },
        "leads.ContactRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "service": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object"
                }
            },
            "required": [
                "name",
                "email",
                "phone",
                "service",
                "message"
            ]
        },
        "leads.FormConfig": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "formTitle": {
                    "type": "string"
                },
                "formSubtitle": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/leads.FormField"
                    }
                },
                "services": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/leads.ServiceOption"
                    }
                },
                "submitText": {
                    "type": "string"
                },
                "successMessage": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "leads.FormField": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "placeholder": {
                    "type": "string"
                },
                "required": {
                    "type": "boolean"
                },
                "position": {
                    "type": "integer"
                }
            },
            "required": [
                "name",
                "label",
                "type"
            ]
        },
        "leads.FormRequest": {
            "type": "object",
            "properties": {
                "formTitle": {
                    "type": "string"
                },
                "formSubtitle": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/leads.FormField"
                    }
                },
                "services": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/leads.ServiceOption"
                    }
                },
                "submitText": {
                    "type": "string"
                },
                "successMessage": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "leads.Lead": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "leadType": {
                    "type": "string"
                },
                "fullName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "serviceInterest": {
                    "type": "string"
                },
                "projectDetails": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object"
                }
            }
        },
        "leads.Receipt": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "submittedAt": {
                    "type": "string"
                }
            }
        },
        "leads.ServiceOption": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                }
            },
            "required": [
                "value",
                "label"
            ]
        },
        "leads.StatusRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                }
            },
            "required": [
                "status"
            ]
        },
        "navigation.DropdownData": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "navItemId": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/navigation.DropdownItem"
                    }
                }
            }
        },
        "navigation.DropdownItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "dropdownDataId": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "navigation.NavItem": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "hasDropdown": {
                    "type": "boolean"
                },
                "isActive": {
                    "type": "boolean"
                },
                "dropdown": {
                    "$ref": "#/definitions/navigation.DropdownData"
                }
            }
        },
        "navigation.NavItemInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                },
                "href": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                },
                "hasDropdown": {
                    "type": "boolean"
                }
            },
            "required": [
                "name",
                "key"
            ]
        },
        "navigation.PublicNavigation": {
            "type": "object",
            "properties": {
                "navItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/navigation.NavItem"
                    }
                },
                "dropdownData": {
                    "type": "object"
                },
                "themeConfig": {
                    "$ref": "#/definitions/theme.Config"
                }
            }
        },
        "navigation.UpdateRequest": {
            "type": "object",
            "properties": {
                "navItems": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/navigation.NavItemInput"
                    }
                },
                "dropdownData": {
                    "type": "object"
                }
            },
            "required": [
                "navItems"
            ]
        },
        "pages.CallToAction": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "pageKey": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "primaryText": {
                    "type": "string"
                },
                "primaryLink": {
                    "type": "string"
                },
                "secondaryText": {
                    "type": "string"
                },
                "secondaryLink": {
                    "type": "string"
                },
                "bgColor": {
                    "type": "string"
                },
                "textColor": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "pages.CallToActionInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "pageKey": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "primaryText": {
                    "type": "string"
                },
                "primaryLink": {
                    "type": "string"
                },
                "secondaryText": {
                    "type": "string"
                },
                "secondaryLink": {
                    "type": "string"
                },
                "bgColor": {
                    "type": "string"
                },
                "textColor": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            },
            "required": [
                "pageKey",
                "title",
                "primaryText",
                "primaryLink"
            ]
        },
        "pages.CallToActionsRequest": {
            "type": "object",
            "properties": {
                "ctas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pages.CallToActionInput"
                    }
                }
            },
            "required": [
                "ctas"
            ]
        },
        "pages.Content": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "pageKey": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "heroTitle": {
                    "type": "string"
                },
                "heroSubtitle": {
                    "type": "string"
                },
                "heroDescription": {
                    "type": "string"
                },
                "heroImageUrl": {
                    "type": "string"
                },
                "processImageUrl": {
                    "type": "string"
                },
                "complianceImageUrl": {
                    "type": "string"
                },
                "ctaText": {
                    "type": "string"
                },
                "ctaLink": {
                    "type": "string"
                },
                "ctaSecondaryText": {
                    "type": "string"
                },
                "ctaSecondaryLink": {
                    "type": "string"
                },
                "keywords": {
                    "type": "string"
                },
                "metaDescription": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "pages.ContentRequest": {
            "type": "object",
            "properties": {
                "pageKey": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "heroTitle": {
                    "type": "string"
                },
                "heroSubtitle": {
                    "type": "string"
                },
                "heroDescription": {
                    "type": "string"
                },
                "heroImageUrl": {
                    "type": "string"
                },
                "processImageUrl": {
                    "type": "string"
                },
                "complianceImageUrl": {
                    "type": "string"
                },
                "ctaText": {
                    "type": "string"
                },
                "ctaLink": {
                    "type": "string"
                },
                "ctaSecondaryText": {
                    "type": "string"
                },
                "ctaSecondaryLink": {
                    "type": "string"
                },
                "keywords": {
                    "type": "string"
                },
                "metaDescription": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object"
                },
                "isActive": {
                    "type": "boolean"
                }
            },
            "required": [
                "pageKey",
                "title"
            ]
        },
        "pages.PageCallToActionsRequest": {
            "type": "object",
            "properties": {
                "ctas": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pages.CallToActionInput"
                    }
                }
            }
        },
        "reconcile.Counts": {
            "type": "object",
            "properties": {
                "createdCount": {
                    "type": "integer"
                },
                "updatedCount": {
                    "type": "integer"
                },
                "deletedCount": {
                    "type": "integer"
                }
            }
        },
        "response.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "sections.Content": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "sectionKey": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "sections.UpdateRequest": {
            "type": "object",
            "properties": {
                "sectionKey": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "subtitle": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                }
            },
            "required": [
                "sectionKey",
                "title"
            ]
        },
        "services.Benefit": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "stat": {
                    "type": "string"
                },
                "statLabel": {
                    "type": "string"
                }
            }
        },
        "services.Offering": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "shortDesc": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "benefits": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/services.Benefit"
                    }
                },
                "processSteps": {
                    "type": "object"
                },
                "complianceItems": {
                    "type": "object"
                },
                "imageUrl": {
                    "type": "string"
                },
                "heroImageUrl": {
                    "type": "string"
                },
                "processImageUrl": {
                    "type": "string"
                },
                "complianceImageUrl": {
                    "type": "string"
                },
                "onQuote": {
                    "type": "boolean"
                },
                "hasProcess": {
                    "type": "boolean"
                },
                "hasCompliance": {
                    "type": "boolean"
                },
                "isActive": {
                    "type": "boolean"
                },
                "isFeatured": {
                    "type": "boolean"
                },
                "isPopular": {
                    "type": "boolean"
                },
                "position": {
                    "type": "integer"
                },
                "price": {
                    "type": "string"
                },
                "buttonText": {
                    "type": "string"
                },
                "buttonLink": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object"
                }
            }
        },
        "services.OfferingInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "shortDesc": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "features": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "benefits": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/services.Benefit"
                    }
                },
                "processSteps": {
                    "type": "object"
                },
                "complianceItems": {
                    "type": "object"
                },
                "imageUrl": {
                    "type": "string"
                },
                "heroImageUrl": {
                    "type": "string"
                },
                "processImageUrl": {
                    "type": "string"
                },
                "complianceImageUrl": {
                    "type": "string"
                },
                "onQuote": {
                    "type": "boolean"
                },
                "hasProcess": {
                    "type": "boolean"
                },
                "hasCompliance": {
                    "type": "boolean"
                },
                "isActive": {
                    "type": "boolean"
                },
                "isFeatured": {
                    "type": "boolean"
                },
                "isPopular": {
                    "type": "boolean"
                },
                "position": {
                    "type": "integer"
                },
                "price": {
                    "type": "string"
                },
                "buttonText": {
                    "type": "string"
                },
                "buttonLink": {
                    "type": "string"
                },
                "metadata": {
                    "type": "object"
                }
            },
            "required": [
                "title",
                "slug",
                "description",
                "icon",
                "color",
                "features"
            ]
        },
        "services.QuoteOption": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                }
            }
        },
        "services.UpdateRequest": {
            "type": "object",
            "properties": {
                "services": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/services.OfferingInput"
                    }
                }
            },
            "required": [
                "services"
            ]
        },
        "stats.Stat": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "stats.StatInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "isActive": {
                    "type": "boolean"
                }
            },
            "required": [
                "number",
                "label"
            ]
        },
        "stats.UpdateRequest": {
            "type": "object",
            "properties": {
                "stats": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/stats.StatInput"
                    }
                }
            },
            "required": [
                "stats"
            ]
        },
        "testimonials.Testimonial": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "avatar": {
                    "type": "string"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "service": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "isFeatured": {
                    "type": "boolean"
                },
                "position": {
                    "type": "integer"
                }
            }
        },
        "testimonials.TestimonialInput": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "company": {
                    "type": "string"
                },
                "content": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "avatar": {
                    "type": "string"
                },
                "results": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "service": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "isFeatured": {
                    "type": "boolean"
                },
                "position": {
                    "type": "integer"
                }
            },
            "required": [
                "name",
                "role",
                "company",
                "content",
                "avatar"
            ]
        },
        "testimonials.UpdateRequest": {
            "type": "object",
            "properties": {
                "testimonials": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/testimonials.TestimonialInput"
                    }
                }
            },
            "required": [
                "testimonials"
            ]
        },
        "theme.Config": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "primaryColor": {
                    "type": "string"
                },
                "accentColor": {
                    "type": "string"
                },
                "companyName": {
                    "type": "string"
                },
                "logoUrl": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                }
            }
        },
        "theme.UpdateRequest": {
            "type": "object",
            "properties": {
                "primaryColor": {
                    "type": "string"
                },
                "accentColor": {
                    "type": "string"
                },
                "companyName": {
                    "type": "string"
                },
                "logoUrl": {
                    "type": "string"
                }
            },
            "required": [
                "primaryColor",
                "accentColor"
            ]
        },
        "uploads.File": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                },
                "updatedAt": {
                    "type": "string"
                },
                "filename": {
                    "type": "string"
                },
                "originalName": {
                    "type": "string"
                },
                "mimetype": {
                    "type": "string"
                },
                "size": {
                    "type": "integer"
                },
                "path": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                },
                "fileType": {
                    "type": "string"
                },
                "uploadedBy": {
                    "type": "string"
                }
            }
        },
        "uploads.Stats": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "images": {
                    "type": "integer"
                },
                "documents": {
                    "type": "integer"
                },
                "videos": {
                    "type": "integer"
                },
                "totalSize": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Site CMS API",
	Description:      "Content and lead capture API for the marketing website.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
