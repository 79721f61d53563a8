package render

// Replacement maps one legacy media URL prefix to its CDN location.
type Replacement struct {
	Old string
	New string
}

// URLReplacements is the static rewrite table for broken legacy media URLs.
// Order matters: the rewriter applies the first matching entry, so specific
// URLs come before the generic prefixes.
var URLReplacements = []Replacement{
	// Contributor portraits
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/default_images/default-contributeur.png",
		New: "https://cdn.geotribu.fr/images/internal/charte/geotribu_logo_64x64.png",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeurs/moi_cropped_0.jpg",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/mraj.jpg",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeurs/profil_pro_jm.JPG",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/jmou.jpg",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeurs/arnaud-vandecasteele_0_0.JPG",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/avdc.jpg",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeurs/IMG_jeremie.JPG",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/jory.JPG",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeurs/jeremie.jpg",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/jory.JPG",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeurs/274955_528426175_572605730_n.jpg",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/avha.jpg",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeurs/E.D.photo__0_0.jpg",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/edel.jpg",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeurs/photo_2011_1.png",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/tgra.jpg",
	},
	{
		Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/styles/about_author/public/img/contributeursR.jpg",
		New: "https://cdn.geotribu.fr/images/internal/contributeurs/rbov.jpg",
	},
	// Default news icons
	{Old: "http://localhost/sites/default/public/public_res/default_images/News.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	{Old: "http://localhost/sites/default/public/public_res/default_images/News_0.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	{Old: "http://localhost/sites/default/public/public_res/default_images/News_1.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	{Old: "http://localhost/sites/default/public/public_res/default_images/News_2.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	{Old: "http://localhost/sites/default/public/public_res/default_images/News_3.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	{Old: "http://localhost/sites/default/public/public_res/default_images/News_4.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	{Old: "http://localhost/sites/default/public/public_res/default_images/News_5.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	{Old: "http://localhost/sites/default/public/public_res/default_images/News_6.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	{Old: "http://localhost/sites/default/public/public_res/default_images/News_7.png", New: "https://cdn.geotribu.fr/img/internal/icons-rdp-news/news.png"},
	// Default world icons
	{Old: "http://www.geotribu.net/sites/default/files/Tuto/img/Blog/world.png", New: "https://cdn.geotribu.fr/images/internal/icons-rdp-news/world.png"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/default_images/world.png", New: "https://cdn.geotribu.fr/images/internal/icons-rdp-news/world.png"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/default_images/world_0.png", New: "https://cdn.geotribu.fr/images/internal/icons-rdp-news/world.png"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/default_images/world_1.png", New: "https://cdn.geotribu.fr/images/internal/icons-rdp-news/world.png"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/default_images/world_2.png", New: "https://cdn.geotribu.fr/images/internal/icons-rdp-news/world.png"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/default_images/world_3.png", New: "https://cdn.geotribu.fr/images/internal/icons-rdp-news/world.png"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/default_images/world_4.png", New: "https://cdn.geotribu.fr/images/internal/icons-rdp-news/world.png"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/default_images/world_5.png", New: "https://cdn.geotribu.fr/images/internal/icons-rdp-news/world.png"},
	// Generic prefixes, last
	{Old: "http://www.geotribu.net/sites/default/public/public_res/img/articles-blog-rdp/story/", New: "https://cdn.geotribu.fr/images/articles-blog-rdp/story/"},
	{Old: "http://localhost/sites/default/public/public_res/", New: "https://cdn.geotribu.fr/img/"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/img/", New: "https://cdn.geotribu.fr/img/"},
	{Old: "http://localhost/geotribu_reborn/sites/default/public/public_res/default_images/", New: "https://cdn.geotribu.fr/img/"},
	{Old: "http://geotribu.net/sites/default/public/public_res/img/", New: "https://cdn.geotribu.fr/img/"},
	{Old: "http://www.geotribu.net/sites/default/public/public_res/img/", New: "https://cdn.geotribu.fr/img/"},
}

// AuthorSnippets maps known contributor names (lower-cased) to the snippet
// file included in place of an inline author block.
var AuthorSnippets = map[string]string{
	"arnaud vandecasteele": "content/team/avdc.md",
	"etienne delay":        "content/team/edel.md",
	"fabien goblet":        "content/team/fgob.md",
	"geotribu":             "content/toc_nav_ignored/snippets/authors/geotribu.md",
	"guillaume de boyer":   "content/team/gdbo.md",
	"jérémie ory":          "content/team/jory.md",
	"julien moura":         "content/team/jmou.md",
	"mathieu rajerison":    "content/team/mraj.md",
	"rémi bovard":          "content/team/rbov.md",
	"pierre vernier":       "content/team/pver.md",
	"thomas gratier":       "content/team/tgra.md",
}
