package service

import "strings"

// ==================== 纹样数据集 ====================

// MotifInfo 纹样：名称、产地、寓意
type MotifInfo struct {
	Motif      string `json:"motif"`
	Origin     string `json:"origin"`
	Philosophy string `json:"philosophy"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// genericPhilosophy 数据集中找不到对应纹样时的说明
const genericPhilosophy = "Motif batik ini merupakan bagian dari warisan budaya Indonesia yang kaya akan makna dan filosofi."

// MotifDataset 返回内置纹样数据集（每次返回新切片）
func MotifDataset() []MotifInfo {
	return []MotifInfo{
		{
			Motif:      "Batik Lasem",
			Origin:     "Rembang",
			Philosophy: "Batik Lasem merupakan hasil akulturasi dari kebudayaan Tiongkok dengan kebudayaan Jawa. Ciri khas dari batik Lasem adalah warnanya yang mencolok, yaitu merah. Motif yang sering digunakan adalah motif tiongkok seperti burung hong, naga, dan lainnya.",
			ImageURL:   "https://i.pinimg.com/564x/33/05/a6/3305a636975a50c1e3531242857f1625.jpg",
		},
		{
			Motif:      "Batik Tujuh Rupa",
			Origin:     "Pekalongan",
			Philosophy: "Batik tujuh rupa dari Pekalongan ini sangat kental dengan nuansa alam. Pada umumnya, batik Pekalongan menampilkan bentuk motif bergambar hewan atau tumbuhan. Motif-motif tersebut diambil dari berbagai campuran kebudayaan lokal dan etnis cina. Pasalnya, dulu Pekalongan adalah tempat transit para pedagang dari berbagai negara. Sehingga, akulturasi budaya itulah yang membuat batik Pekalongan sangat khas dengan alam, khususnya motif jlamprang, motif buketan, motif terang bulan, motif semen, motif pisan bali dan motif lung-lungan.",
			ImageURL:   "https://i.pinimg.com/564x/0a/9b/83/0a9b8335e1a71038e054311354031623.jpg",
		},
		{
			Motif:      "Batik Parang",
			Origin:     "Jawa",
			Philosophy: "Batik Parang merupakan salah satu motif batik yang paling tua di Indonesia. Parang berasal dari kata pereng, yang berarti lereng. Perengan menggambarkan sebuah garis menurun dari tinggi ke rendah secara diagonal. Susunan motif S jalin-menjalin tidak terputus melambangkan kesinambungan. Bentuk dasar huruf S diambil dari ombak samudra yang menggambarkan semangat yang tidak pernah padam. Batik ini merupakan batik asli Indonesia yang sudah ada sejak zaman keraton Mataram.",
			ImageURL:   "https://i.pinimg.com/564x/d5/a5/fe/d5a5fe5f151703cecde69f2551a3db1c.jpg",
		},
		{
			Motif:      "Batik Mega Mendung",
			Origin:     "Cirebon",
			Philosophy: "Motif batik Mega Mendung cukup sederhana namun memberi kesan mewah. Motif mendung di langit Cirebon yang kelabu menjadi inspirasi dari motif batik ini. Motif ini didominasi dengan warna biru, mulai dari biru muda hingga biru tua.",
			ImageURL:   "https://i.pinimg.com/564x/3d/f7/03/3df7030a3e3c150734639442a1b35173.jpg",
		},
		{
			Motif:      "Batik Sidomukti",
			Origin:     "Solo",
			Philosophy: "Batik Sidomukti merupakan batik yang biasa digunakan pada saat acara pernikahan. Kata “sido” berarti jadi, sedangkan “mukti” berarti makmur. Sehingga, batik Sidomukti memiliki harapan agar orang yang mengenakannya akan hidup makmur dan sejahtera.",
			ImageURL:   "https://i.pinimg.com/564x/93/f2/31/93f231a4e845131587d55a30a1e3419e.jpg",
		},
		{
			Motif:      "Batik Sidoluhur",
			Origin:     "Solo",
			Philosophy: "Batik Sidoluhur biasanya dikenakan oleh pengantin wanita pada saat malam pengantin. Kata “sido” berarti jadi, sedangkan “luhur” berarti terhormat dan bermartabat. Sehingga, batik Sidoluhur memiliki harapan agar si pemakai selalu sehat dan menjadi orang yang terhormat dan bermartabat.",
			ImageURL:   "https://i.pinimg.com/564x/0f/0c/34/0f0c3400a4005b5330206263183d692f.jpg",
		},
		{
			Motif:      "Batik Kawung",
			Origin:     "Jawa",
			Philosophy: "Batik Kawung adalah motif tua yang berasal dari tanah Jawa dan banyak dijumpai di beberapa daerah di Jawa. Motif ini terinspirasi dari bentuk buah kawung atau buah aren. Motif kawung memiliki makna kesucian dan kemurnian. Selain itu, motif kawung juga diartikan sebagai harapan agar manusia selalu ingat akan asal usulnya.",
			ImageURL:   "https://i.pinimg.com/564x/4b/0b/c6/4b0bc69b18a8d9a0b16231a220033ab6.jpg",
		},
		{
			Motif:      "Batik Pring Sedapur",
			Origin:     "Magetan",
			Philosophy: "Batik Pring Sedapur memiliki motif yang sederhana dan simpel. Motif yang digunakan adalah motif bambu. Meskipun begitu, batik Pring Sedapur memiliki filosofi yang mendalam, yaitu hidup rukun dan tentram.",
			ImageURL:   "https://i.pinimg.com/564x/2a/39/a9/2a39a9c651e71a72a33f0f5b16a2469b.jpg",
		},
		{
			Motif:      "Batik Geblek Renteng",
			Origin:     "Kulon Progo",
			Philosophy: "Batik Geblek Renteng memiliki motif berbentuk geblek. Geblek merupakan makanan khas Kulon Progo yang terbuat dari singkong. Motif geblek ini memiliki makna yaitu sebagai cita-cita untuk mengangkat potensi daerah Kulon Progo.",
			ImageURL:   "https://i.pinimg.com/564x/37/5b/5c/375b5c0310c0a10f03c0b05734218579.jpg",
		},
		{
			Motif:      "Batik Jagatan Pisang",
			Origin:     "Bali",
			Philosophy: "Batik Jagatan Pisang berasal dari Bali. Kata “jagatan pisang” berarti pisang satu sisir. Batik ini biasanya diberikan kepada kekasih yang akan berpergian jauh dengan harapan agar si kekasih akan kembali lagi.",
			ImageURL:   "https://i.pinimg.com/564x/6c/c2/39/6cc239922b057f8f11f21a4001f019c4.jpg",
		},
		{
			Motif:      "Batik Priyangan",
			Origin:     "Tasikmalaya",
			Philosophy: "Batik Priyangan memiliki ciri khas yaitu coraknya yang rapat dan rapi. Motif yang sering digunakan adalah motif tumbuh-tumbuhan. Batik Priyangan memiliki makna yaitu sebagai simbol kesederhanaan dan keterbukaan.",
			ImageURL:   "https://i.pinimg.com/564x/16/22/19/1622190533a23f433f1f3014120008a0.jpg",
		},
		{
			Motif:      "Batik Garutan",
			Origin:     "Garut",
			Philosophy: "Batik Garutan memiliki ciri khas yaitu warnanya yang cerah dan coraknya yang beragam. Motif yang sering digunakan adalah motif flora dan fauna. Batik Garutan memiliki makna yaitu sebagai simbol keberanian dan keindahan.",
			ImageURL:   "https://i.pinimg.com/564x/8b/a3/4c/8ba34c382d5f5a8e0b6a2e4e0e0b6a0e.jpg",
		},
		{
			Motif:      "Batik Sekar Jagad",
			Origin:     "Yogyakarta",
			Philosophy: "Batik Sekar Jagad memiliki makna yaitu keindahan dan kecantikan. Kata “sekar” berarti bunga, sedangkan “jagad” berarti dunia. Sehingga, batik Sekar Jagad memiliki makna yaitu keindahan dan kecantikan yang ada di dunia.",
			ImageURL:   "https://i.pinimg.com/564x/55/0a/17/550a1760816a7aou502139b25d40131f4.jpg",
		},
		{
			Motif:      "Batik Tambal",
			Origin:     "Yogyakarta",
			Philosophy: "Batik Tambal memiliki makna yaitu menambal atau memperbaiki. Konon, batik ini dipercaya dapat menyembuhkan orang sakit. Caranya adalah dengan menyelimuti orang sakit dengan kain batik ini.",
			ImageURL:   "https://i.pinimg.com/564x/2e/da/0c/2eda0c93cadd2ea2d34a5c131c21e2a5.jpg",
		},
		{
			Motif:      "Batik Sogan",
			Origin:     "Solo",
			Philosophy: "Batik Sogan memiliki ciri khas yaitu warnanya yang cokelat. Batik ini memiliki makna yaitu sebagai simbol kerendahan hati dan kesederhanaan.",
			ImageURL:   "https://i.pinimg.com/564x/0a/7b/0a/0a7b0a3b1b1c1b1c1b1c1b1c1b1c1b1c.jpg",
		},
		{
			Motif:      "Batik Gentongan",
			Origin:     "Madura",
			Philosophy: "Batik Gentongan memiliki ciri khas yaitu warnanya yang cerah dan coraknya yang beragam. Motif yang sering digunakan adalah motif flora dan fauna. Batik Gentongan memiliki makna yaitu sebagai simbol keberanian dan keindahan.",
			ImageURL:   "https://i.pinimg.com/564x/5a/3e/3b/5a3e3b1b1c1b1c1b1c1b1c1b1c1b1c1c.jpg",
		},
		{
			Motif:      "Batik Simbut",
			Origin:     "Banten",
			Philosophy: "Batik Simbut memiliki ciri khas yaitu coraknya yang sederhana dan warnanya yang cerah. Motif yang sering digunakan adalah motif daun talas. Batik Simbut memiliki makna yaitu sebagai simbol kesederhanaan dan keterbukaan.",
			ImageURL:   "https://i.pinimg.com/564x/1b/1c/1b/1b1c1b1b1c1b1c1b1c1b1c1b1c1b1c1c.jpg",
		},
		{
			Motif:      "Batik Ulamsari Mas",
			Origin:     "Bali",
			Philosophy: "Batik Ulamsari Mas memiliki ciri khas yaitu coraknya yang beragam dan warnanya yang cerah. Motif yang sering digunakan adalah motif ikan dan udang. Batik Ulamsari Mas memiliki makna yaitu sebagai simbol kemakmuran dan kesejahteraan.",
			ImageURL:   "https://i.pinimg.com/564x/1a/1b/1a/1a1b1a1b1c1b1c1b1c1b1c1b1c1b1c1c.jpg",
		},
		{
			Motif:      "Batik Celup",
			Origin:     "Jawa",
			Philosophy: "Batik Celup memiliki ciri khas yaitu coraknya yang beragam dan warnanya yang cerah. Motif yang sering digunakan adalah motif flora dan fauna. Batik Celup memiliki makna yaitu sebagai simbol keberanian dan keindahan.",
			ImageURL:   "https://i.pinimg.com/564x/1c/1c/1c/1c1c1c1c1c1c1c1c1c1c1c1c1c1c1c1c.jpg",
		},
		{
			Motif:      "Batik Tulis",
			Origin:     "Jawa",
			Philosophy: "Batik Tulis memiliki ciri khas yaitu coraknya yang beragam dan warnanya yang cerah. Motif yang sering digunakan adalah motif flora dan fauna. Batik Tulis memiliki makna yaitu sebagai simbol keberanian dan keindahan.",
			ImageURL:   "https://i.pinimg.com/564x/1d/1d/1d/1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d1d.jpg",
		},
	}
}

// LookupMotif 大小写不敏感的子串匹配，取第一个命中项
// label 包含数据集名称，或数据集名称包含 label 均视为命中
func LookupMotif(dataset []MotifInfo, label string) (MotifInfo, bool) {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return MotifInfo{}, false
	}
	needle = strings.ReplaceAll(needle, "_", " ")
	for _, m := range dataset {
		name := strings.ToLower(m.Motif)
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			return m, true
		}
	}
	return MotifInfo{}, false
}
