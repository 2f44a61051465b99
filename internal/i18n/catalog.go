package i18n

// tables maps each locale to its key/value strings. Keys are shared with the
// web front end, so they keep its dotted naming.
var tables = map[Locale]map[string]string{
	Chinese: {
		"titles.parameters":    "参数设置",
		"titles.visualization": "示意与对比",
		"titles.results":       "计算结果",
		"titles.comparison":    "摄像头对比",

		"labels.language":     "界面语言",
		"labels.cameraModel":  "摄像头类型",
		"labels.sensorFormat": "传感器规格",
		"labels.pixelPitch":   "像素尺寸 p_sen (μm)",
		"labels.objectiveMag": "物镜倍率 M_obj",
		"labels.NA":           "NA",
		"labels.fieldNumber":  "视场数 FN (mm)",
		"labels.couplerMag":   "C接口适配器倍率 M_C",
		"labels.wavelength":   "波长 λ (μm)",
		"labels.display":      "显示器 (100% 缩放估算)",
		"labels.diagonalInch": "对角 D_disp (英寸)",
		"labels.displayRes":   "分辨率宽×高 R_disp",
		"labels.sample":       "显微样本",
		"labels.camera":       "摄像头",
		"labels.cameraPixels": "摄像头像素",
		"labels.systemParams": "系统参数",
		"report.metric":       "项目",
		"report.value":        "数值",
		"samples.hatch":       "斜线阴影",

		"groups.sensor":    "传感器",
		"groups.sampling":  "采样与分辨率",
		"groups.opticsFov": "光学与视场",

		"units.px": "px",

		"cards.opticalResolution":  "光学分辨率 (Rayleigh) r_R",
		"cards.sampling":           "采样评估",
		"cards.totalMag":           "总放大率 M_total",
		"cards.digitalResolution":  "数码分辨率",
		"cards.objectPixel":        "物方像素尺寸 p_obj",
		"cards.sensorLimited":      "传感器限制分辨率 r_N",
		"cards.limitingResolution": "限制分辨率 (取大者)",
		"cards.requiredPixel":      "所需像素尺寸(奈奎斯特) p_req",
		"cards.optimumArray":       "最佳阵列大小(估算)",
		"cards.objectFov":          "物方视场 FOV_obj",
		"cards.displayMag":         "显示放大率(100%缩放)",
		"cards.sensorSize":         "传感器尺寸",
		"cards.sensorDiagonal":     "传感器对角线 D_sen",
		"cards.projectionDiagonal": "传感器投影对角线 D_proj",
		"cards.coverage":           "覆盖比例",
		"cards.coverageEval":       "接口匹配评估",

		"coverage.ok":        "接口合适",
		"coverage.too_small": "接口过小",
		"coverage.too_large": "接口过大",

		"status.optimal":      "合适",
		"status.undersampled": "欠采样",
		"status.oversampled":  "过采样",

		"misc.projectionDiagonalLabel": "投影对角线 = {d} mm",
		"misc.fnLabel":                 "FN = {value} mm",
		"misc.projectionLabel":         "传感器投影 = {w} × {h} mm",
		"misc.couplerLabel":            "C接口 = {value} ×",

		"tips.cameraModel":        "选择预设以自动填充摄像头像素、像素尺寸与适配器倍率。",
		"tips.cameraPixels":       "摄像头像素分辨率，配合像素尺寸推导传感器物理尺寸。",
		"tips.sensorPixel":        "传感器像素尺寸（μm）。与像素分辨率一起决定物理尺寸与采样能力。",
		"tips.objectiveMag":       "物镜标称放大倍率（4×/10×/20×/40×/100× 等）。",
		"tips.NA":                 "物镜数值孔径 NA；NA 越大，分辨率越高、景深越浅。",
		"tips.fieldNumber":        "中间像面可用视场直径（mm）。",
		"tips.couplerMag":         "C 接口适配器的倍率（0.35×/0.5×/0.63×/1.0×）。",
		"tips.wavelength":         "用于分辨率计算的单色波长 λ，默认绿色 0.55 μm。",
		"tips.display":            "用于估算 100% 缩放时的屏幕放大率，不代表成像质量。",
		"tips.opticalResolution":  "Rayleigh 准则：0.61×λ/NA，代表光学极限分辨率。",
		"tips.sampling":           "将物方像素尺寸与 Rayleigh/2 对比评估采样是否合适。",
		"tips.objectPixel":        "物方像素尺寸 p_obj = p_sen / M_total。",
		"tips.sensorLimited":      "由采样限制的最小可分辨细节 r_N = 2×p_obj。",
		"tips.limitingResolution": "系统限制分辨率 = max(r_R, r_N)。",
		"tips.optimumArray":       "满足奈奎斯特所需的最佳像素数组大小（估算）。",
		"tips.objectFov":          "物方视场 = 传感器尺寸 / M_total。",
		"tips.totalMag":           "总放大率 = 物镜倍率 × C接口适配器倍率。",
		"tips.sensorDiagonal":     "由像素数 × 像素尺寸推导得到的传感器对角线。",
		"tips.projectionDiagonal": "中间像面上传感器投影的对角线长度。",
		"tips.coverage":           "覆盖比例 = 投影对角线 / 视场数 × 100%。",
		"tips.coverageEval":       "根据覆盖比例评估接口匹配：>90% 判定接口过小；<50% 判定接口过大；否则判定接口合适。",
		"tips.displayMag":         "在 100% 缩放时屏幕上的放大倍率，仅作查看尺度参考。",
	},
	English: {
		"titles.parameters":    "Parameters",
		"titles.visualization": "Visualization",
		"titles.results":       "Results",
		"titles.comparison":    "Camera Comparison",

		"labels.language":     "Language",
		"labels.cameraModel":  "Camera Model",
		"labels.sensorFormat": "Sensor Format",
		"labels.pixelPitch":   "Pixel pitch p_sen (μm)",
		"labels.objectiveMag": "Objective Magnification M_obj",
		"labels.NA":           "NA",
		"labels.fieldNumber":  "Field Number FN (mm)",
		"labels.couplerMag":   "C-mount adapter M_C",
		"labels.wavelength":   "Wavelength λ (μm)",
		"labels.display":      "Display (100% zoom estimation)",
		"labels.diagonalInch": "Diagonal D_disp (inch)",
		"labels.displayRes":   "Resolution W×H R_disp",
		"labels.sample":       "Microscope Sample",
		"labels.camera":       "Camera",
		"labels.cameraPixels": "Camera pixels",
		"labels.systemParams": "System Parameters",
		"report.metric":       "Metric",
		"report.value":        "Value",
		"samples.hatch":       "Hatched pattern",

		"groups.sensor":    "Sensor",
		"groups.sampling":  "Sampling & Resolution",
		"groups.opticsFov": "Optics & FOV",

		"units.px": "px",

		"cards.opticalResolution":  "Optical Resolution (Rayleigh) r_R",
		"cards.sampling":           "Sampling Assessment",
		"cards.totalMag":           "Total Magnification M_total",
		"cards.digitalResolution":  "Digital Resolution",
		"cards.objectPixel":        "Object-side Pixel Size p_obj",
		"cards.sensorLimited":      "Sensor-limited Resolution r_N",
		"cards.limitingResolution": "Limiting Resolution (max)",
		"cards.requiredPixel":      "Required Pixel (Nyquist) p_req",
		"cards.optimumArray":       "Optimum Array Size (est.)",
		"cards.objectFov":          "Object-side FOV",
		"cards.displayMag":         "Display Magnification (100%)",
		"cards.sensorSize":         "Sensor size",
		"cards.sensorDiagonal":     "Sensor diagonal D_sen",
		"cards.projectionDiagonal": "Projection diagonal D_proj",
		"cards.coverage":           "Coverage Ratio",
		"cards.coverageEval":       "C-mount Match",

		"coverage.ok":        "OK",
		"coverage.too_small": "C-mount too small",
		"coverage.too_large": "C-mount too large",

		"status.optimal":      "optimal",
		"status.undersampled": "undersampled",
		"status.oversampled":  "oversampled",

		"misc.projectionDiagonalLabel": "Proj. diagonal = {d} mm",
		"misc.fnLabel":                 "FN = {value} mm",
		"misc.projectionLabel":         "Sensor projection = {w} × {h} mm",
		"misc.couplerLabel":            "C-mount = {value}×",

		"tips.cameraModel":        "Choose a preset to fill camera pixels, pixel size and adapter.",
		"tips.cameraPixels":       "Sensor pixel resolution; combines with pixel pitch to derive physical size.",
		"tips.sensorPixel":        "Sensor pixel pitch in micrometers. With pixel count determines physical size and sampling.",
		"tips.objectiveMag":       "Nominal objective magnification (4×/10×/20×/40×/100× etc.).",
		"tips.NA":                 "Numerical Aperture; higher NA increases resolution, reduces depth of field.",
		"tips.fieldNumber":        "Usable field diameter at intermediate image plane (mm).",
		"tips.couplerMag":         "C-mount adapter magnification (0.35×/0.5×/0.63×/1.0×).",
		"tips.wavelength":         "Monochromatic wavelength λ used for resolution; default 0.55 μm (green).",
		"tips.display":            "For estimating on-screen magnification at 100% zoom only.",
		"tips.opticalResolution":  "Rayleigh criterion: 0.61×λ/NA.",
		"tips.sampling":           "Compare p_obj to Rayleigh/2 (Nyquist) to rate sampling.",
		"tips.objectPixel":        "Object-side pixel size p_obj = p_sen / M_total.",
		"tips.sensorLimited":      "Nyquist-limited smallest feature r_N = 2×p_obj.",
		"tips.limitingResolution": "Limiting resolution = max(r_R, r_N).",
		"tips.optimumArray":       "Best pixel array size to meet Nyquist with current size.",
		"tips.objectFov":          "Object-side FOV = sensor size / M_total.",
		"tips.totalMag":           "Total magnification = objective × C-mount adapter.",
		"tips.sensorDiagonal":     "Derived from pixels × pixel pitch.",
		"tips.projectionDiagonal": "Diagonal of sensor projection in the intermediate plane.",
		"tips.coverage":           "Coverage = projection diagonal / FN × 100%.",
		"tips.coverageEval":       "Evaluate C-mount match by coverage: >90% → too small; <50% → too large; otherwise OK.",
		"tips.displayMag":         "On-screen magnification at 100% zoom (viewing-only metric).",
	},
	German: {
		"titles.parameters":    "Parameter",
		"titles.visualization": "Visualisierung",
		"titles.results":       "Ergebnisse",
		"titles.comparison":    "Kameravergleich",

		"labels.language":     "Sprache",
		"labels.cameraModel":  "Kameratyp",
		"labels.sensorFormat": "Sensorformat",
		"labels.pixelPitch":   "Pixelgröße p_sen (μm)",
		"labels.objectiveMag": "Objektivvergrößerung M_obj",
		"labels.NA":           "NA",
		"labels.fieldNumber":  "Sehfelddurchmesser FN (mm)",
		"labels.couplerMag":   "C-Mount-Adapter M_C",
		"labels.wavelength":   "Wellenlänge λ (μm)",
		"labels.display":      "Display (100%-Zoom-Schätzung)",
		"labels.diagonalInch": "Diagonale D_disp (Zoll)",
		"labels.displayRes":   "Auflösung B×H R_disp",
		"labels.sample":       "Mikroskopisches Präparat",
		"labels.camera":       "Kamera",
		"labels.cameraPixels": "Kamerapixel",
		"labels.systemParams": "Systemparameter",
		"report.metric":       "Kennwert",
		"report.value":        "Wert",
		"samples.hatch":       "Schraffur",

		"groups.sensor":    "Sensor",
		"groups.sampling":  "Abtastung & Auflösung",
		"groups.opticsFov": "Optik & Sichtfeld",

		"units.px": "px",

		"cards.opticalResolution":  "Optische Auflösung (Rayleigh) r_R",
		"cards.sampling":           "Abtastbewertung",
		"cards.totalMag":           "Gesamtvergrößerung M_total",
		"cards.digitalResolution":  "Digitale Auflösung",
		"cards.objectPixel":        "Pixelgröße objektseitig p_obj",
		"cards.sensorLimited":      "Sensorbegrenzte Auflösung r_N",
		"cards.limitingResolution": "Begrenzende Auflösung (max)",
		"cards.requiredPixel":      "Erforderliche Pixel (Nyquist) p_req",
		"cards.optimumArray":       "Optimale Arraygröße (Schätzung)",
		"cards.objectFov":          "Sichtfeld objektseitig",
		"cards.displayMag":         "Bildschirmvergrößerung (100%)",
		"cards.sensorSize":         "Sensorgröße",
		"cards.sensorDiagonal":     "Sensor-Diagonale D_sen",
		"cards.projectionDiagonal": "Projektions-Diagonale D_proj",
		"cards.coverage":           "Abdeckungsgrad",
		"cards.coverageEval":       "Adapter-Passung",

		"coverage.ok":        "Passend",
		"coverage.too_small": "Adapter zu klein",
		"coverage.too_large": "Adapter zu groß",

		"status.optimal":      "optimal",
		"status.undersampled": "Unterabtastung",
		"status.oversampled":  "Überabtastung",

		"misc.projectionDiagonalLabel": "Proj.-Diagonale = {d} mm",
		"misc.fnLabel":                 "FN = {value} mm",
		"misc.projectionLabel":         "Sensorprojektion = {w} × {h} mm",
		"misc.couplerLabel":            "C‑Mount = {value}×",

		"tips.cameraModel":        "Wählen Sie ein Preset, um Pixel, Pixelgröße und Adapter auszufüllen.",
		"tips.cameraPixels":       "Sensorauflösung in Pixeln; zusammen mit der Pixelgröße ergibt sich die physikalische Größe.",
		"tips.sensorPixel":        "Sensorpixelgröße (μm). Mit Pixelanzahl ergibt sich die physikalische Größe und das Sampling.",
		"tips.objectiveMag":       "Nennvergrößerung des Objektivs (4×/10×/20×/40×/100× etc.).",
		"tips.NA":                 "Numerische Apertur; größere NA erhöht die Auflösung und verringert die Schärfentiefe.",
		"tips.fieldNumber":        "Nutzbarer Sehfelddurchmesser in der Zwischenbildebene (mm).",
		"tips.couplerMag":         "C-Mount-Adaptervergrößerung (0,35×/0,5×/0,63×/0,8×/1,0×).",
		"tips.wavelength":         "Monochromatische Wellenlänge λ; Standard 0,55 μm (grün).",
		"tips.display":            "Schätzung der Bildschirmvergrößerung bei 100% Zoom.",
		"tips.opticalResolution":  "Rayleigh-Kriterium: 0,61×λ/NA.",
		"tips.sampling":           "Vergleich p_obj mit Rayleigh/2 (Nyquist) zur Beurteilung der Abtastung.",
		"tips.objectPixel":        "Objektseitige Pixelgröße p_obj = p_sen / M_total.",
		"tips.sensorLimited":      "Nyquist-begrenztes Detail r_N = 2×p_obj.",
		"tips.limitingResolution": "Begrenzende Auflösung = max(r_R, r_N).",
		"tips.optimumArray":       "Beste Pixelanzahl, um Nyquist zu erfüllen.",
		"tips.objectFov":          "Objektseitiges Sichtfeld = Sensorgröße / M_total.",
		"tips.totalMag":           "Gesamtvergrößerung = Objektiv × C-Mount-Adapter.",
		"tips.sensorDiagonal":     "Abgeleitet aus Pixelanzahl × Pixelgröße.",
		"tips.projectionDiagonal": "Diagonale der Sensorprojektion in der Zwischenbildebene.",
		"tips.coverage":           "Abdeckungsgrad = Projektionsdiagonale / FN × 100%.",
		"tips.coverageEval":       "Adapter-Passung anhand Abdeckungsgrad: >90% → zu klein; <50% → zu groß; sonst passend.",
		"tips.displayMag":         "Bildschirmvergrößerung bei 100% Zoom (nur Betrachtungsmaß).",
	},
}
