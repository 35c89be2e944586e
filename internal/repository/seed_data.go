package repository

import "batikin/internal/model"

// ==================== 种子数据 ====================
// 每次调用返回新切片，启动时由 EnsureSeed 写入

// SeedUsers 管理员 + 三位已认证工匠
func SeedUsers() []model.User {
	return []model.User{
		{ID: "admin1", Name: "Admin Utama", Email: "admin@warisan.digital", Role: model.UserRoleAdmin, Status: model.UserStatusVerified},
		{ID: "a1", Name: "Ibu Wati", Email: "wati@warisan.digital", Role: model.UserRoleArtisan, Status: model.UserStatusVerified},
		{ID: "a2", Name: "Bapak Joko", Email: "joko@warisan.digital", Role: model.UserRoleArtisan, Status: model.UserStatusVerified},
		{ID: "a3", Name: "Sanggar Lestari", Email: "lestari@warisan.digital", Role: model.UserRoleArtisan, Status: model.UserStatusVerified},
	}
}

// SeedPengrajinDetails 种子工匠资料
func SeedPengrajinDetails() []model.PengrajinDetails {
	return []model.PengrajinDetails{
		{ID: "a1", UserID: "a1", StoreName: "Batik Wati Solo", Address: "Jl. Slamet Riyadi 12, Surakarta", PhoneNumber: "081234567801"},
		{ID: "a2", UserID: "a2", StoreName: "Joko Batik Cirebon", Address: "Jl. Trusmi Kulon 5, Cirebon", PhoneNumber: "081234567802"},
		{ID: "a3", UserID: "a3", StoreName: "Sanggar Lestari", Address: "Jl. Prawirotaman 21, Yogyakarta", PhoneNumber: "081234567803"},
	}
}

// SeedBatiks 初始作品
func SeedBatiks() []model.Batik {
	return []model.Batik{
		{
			ID:          "b1",
			Name:        "Batik Parang Kusumo",
			Motif:       "Parang",
			History:     "Motif Parang adalah salah satu motif batik tertua di Indonesia, melambangkan kekuasaan dan kekuatan. Kusumo berarti bunga, melambangkan kehidupan dan kesuburan. Batik ini secara tradisional dikenakan oleh para bangsawan.",
			ImageURL:    "https://images.unsplash.com/photo-1593941707882-6b25251a47a3?q=80&w=800&auto=format&fit=crop",
			ArtisanID:   "a1",
			ArtisanName: "Ibu Wati",
		},
		{
			ID:          "b2",
			Name:        "Batik Mega Mendung",
			Motif:       "Mega Mendung",
			History:     "Berasal dari Cirebon, motif Mega Mendung melambangkan awan pembawa hujan yang meneduhkan dan memberi kehidupan. Motif ini dipengaruhi oleh budaya Tiongkok, menunjukkan akulturasi budaya yang kaya.",
			ImageURL:    "https://images.unsplash.com/photo-1622171499333-3b28a54c1045?q=80&w=800&auto=format&fit=crop",
			ArtisanID:   "a2",
			ArtisanName: "Bapak Joko",
		},
		{
			ID:          "b3",
			Name:        "Batik Kawung",
			Motif:       "Kawung",
			History:     "Motif Kawung terinspirasi dari buah aren (kolang-kaling) yang dibelah empat. Ini melambangkan kesucian, kemurnian, dan harapan agar manusia selalu ingat akan asal-usulnya.",
			ImageURL:    "https://images.unsplash.com/photo-1583312818559-69b781f75a7a?q=80&w=800&auto=format&fit=crop",
			ArtisanID:   "a1",
			ArtisanName: "Ibu Wati",
		},
		{
			ID:          "b4",
			Name:        "Batik Sidomukti",
			Motif:       "Sido",
			History:     "Berasal dari kata \"sido\" (jadi/terlaksana) dan \"mukti\" (mulia dan sejahtera). Batik ini sering digunakan dalam upacara pernikahan dengan harapan agar kedua mempelai mencapai kemuliaan dan kesejahteraan.",
			ImageURL:    "https://images.unsplash.com/photo-1556741533-4020f6011031?q=80&w=800&auto=format&fit=crop",
			ArtisanID:   "a3",
			ArtisanName: "Sanggar Lestari",
		},
		{
			ID:          "b5",
			Name:        "Batik Tujuh Rupa",
			Motif:       "Tujuh Rupa",
			History:     "Batik dari Pekalongan ini sangat kaya akan warna dan motif, seringkali menampilkan unsur alam seperti hewan dan tumbuhan. Motif ini melambangkan kekayaan budaya pesisir yang dinamis dan adaptif.",
			ImageURL:    "https://images.unsplash.com/photo-1519741497674-611481863552?q=80&w=800&auto=format&fit=crop",
			ArtisanID:   "a2",
			ArtisanName: "Bapak Joko",
		},
		{
			ID:          "b6",
			Name:        "Batik Truntum",
			Motif:       "Truntum",
			History:     "Motif Truntum diciptakan oleh Ratu Kencana, melambangkan cinta yang bersemi kembali. Bentuknya seperti kuntum atau bintang di langit, menjadi simbol cinta yang tulus, abadi, dan semakin berkembang.",
			ImageURL:    "https://images.unsplash.com/photo-1604537449193-0a9d8a34a5d8?q=80&w=800&auto=format&fit=crop",
			ArtisanID:   "a3",
			ArtisanName: "Sanggar Lestari",
		},
	}
}
