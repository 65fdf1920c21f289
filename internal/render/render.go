package render

import "github.com/gin-gonic/gin"

// Renderer est la couture vers le rendu HTML : les handlers construisent un
// sac de données et le moteur de templates reste interchangeable. Les tests
// injectent DataRenderer pour inspecter le sac sans templates.
type Renderer interface {
	HTML(c *gin.Context, code int, template string, data gin.H)
}

// TemplateRenderer rend via les templates chargés sur le moteur gin
// (LoadHTMLGlob dans main).
type TemplateRenderer struct{}

func (TemplateRenderer) HTML(c *gin.Context, code int, template string, data gin.H) {
	c.HTML(code, template, data)
}

// DataRenderer sérialise le sac de données en JSON, template inclus sous la
// clé "_template". Utilisé par les tests de handlers.
type DataRenderer struct{}

func (DataRenderer) HTML(c *gin.Context, code int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["_template"] = template
	c.JSON(code, data)
}
